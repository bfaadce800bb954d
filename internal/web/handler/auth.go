package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/services/auth"
	"github.com/mcoot/arcade-go/internal/web/middleware"
	"github.com/mcoot/arcade-go/internal/web/templates"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		// Already logged in, redirect to home
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := templates.LoginData{
		PageData: pageData(r.Context(), "Log in"),
	}
	render(w, r, "login", data)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderLoginError(w, r, "Username and password are required", username)
		return
	}

	user, err := h.authService.Verify(r.Context(), username, password)
	if err != nil {
		// Unknown user and wrong password render the same message
		h.renderLoginError(w, r, "Invalid username or password", username)
		return
	}

	sess, err := h.authService.Login(r.Context(), user)
	if err != nil {
		h.renderLoginError(w, r, "Login failed, please try again", username)
		return
	}

	h.setSessionCookie(w, sess.Token)
	middleware.SetFlash(w, "success", "Welcome back, "+user.Username+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := templates.RegisterData{
		PageData:    pageData(r.Context(), "Register"),
		FieldErrors: make(map[string]string),
	}
	render(w, r, "register", data)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "", nil)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	fieldErrors := make(map[string]string)

	// All local validation happens before any store call
	if username == "" {
		fieldErrors["username"] = "Username is required"
	} else if len(username) < 3 {
		fieldErrors["username"] = "Username must be at least 3 characters"
	} else if len(username) > 20 {
		fieldErrors["username"] = "Username must be at most 20 characters"
	}

	if password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(password) < 8 {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}

	if password != confirm {
		fieldErrors["confirm_password"] = "Passwords do not match"
	}

	if len(fieldErrors) > 0 {
		h.renderRegisterError(w, r, "", username, fieldErrors)
		return
	}

	_, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			fieldErrors["username"] = "Username already taken"
			h.renderRegisterError(w, r, "", username, fieldErrors)
		} else {
			h.renderRegisterError(w, r, "Registration failed, please try again", username, nil)
		}
		return
	}

	middleware.SetFlash(w, "success", "Account created! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.authService.Logout(r.Context(), cookie.Value)
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days, matching the default session TTL
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	data := templates.LoginData{
		PageData: pageData(r.Context(), "Log in"),
		Username: username,
		Error:    errorMsg,
	}
	render(w, r, "login", data)
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, errorMsg, username string, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}

	data := templates.RegisterData{
		PageData:    pageData(r.Context(), "Register"),
		Username:    username,
		Error:       errorMsg,
		FieldErrors: fieldErrors,
	}
	render(w, r, "register", data)
}
