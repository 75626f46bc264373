package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginForm struct {
	Username string `form:"username" validate:"required,max=50"`
	Password string `form:"password" validate:"required"`
}

type RegistroForm struct {
	Username        string `form:"username"         validate:"required,max=50"`
	Email           string `form:"email"            validate:"required,email,max=100"`
	Password        string `form:"password"         validate:"required,min=6,max=72"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// ─── Session ─────────────────────────────────────────────────────────────────

// Identidad is the authenticated user attached to a request.
type Identidad struct {
	UsuarioID uint
	Username  string
	TokenID   string
	Expira    time.Time
}

// Sesion is the result of a successful login.
type Sesion struct {
	Token     string
	Identidad Identidad
}
