// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	"github.com/skip2/go-qrcode"

	"luckshop/internal/middleware"
	"luckshop/internal/session"
	"luckshop/internal/store"
)

// totpIssuer is the issuer label shown in authenticator apps.
const totpIssuer = "LuckShop"

// Auth serves login, logout and two-factor enrollment for the single
// admin account.
type Auth struct {
	sessions *session.Store
	admins   *store.AdminStore
}

// NewAuth creates the auth handler group.
func NewAuth(sessions *session.Store, admins *store.AdminStore) *Auth {
	return &Auth{sessions: sessions, admins: admins}
}

// Login serves POST /api/admin/login. A successful login creates a
// session; when TOTP is enrolled the session still needs a verify call
// before it passes the 2FA gate.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	admin, err := h.admins.Get()
	if err != nil {
		slog.Error("admin lookup failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if admin == nil ||
		!strings.EqualFold(strings.TrimSpace(req.Email), admin.Email) ||
		!h.admins.CheckPassword(admin, req.Password) {
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	data := &session.Data{
		Email:     admin.Email,
		TwoFADone: !admin.TOTPEnabled,
	}
	if _, err := h.sessions.Create(r.Context(), w, data); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email":             admin.Email,
		"twoFactorRequired": admin.TOTPEnabled,
	})
}

// Logout serves POST /api/admin/logout.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me serves GET /api/admin/me: the session and enrollment state the
// admin frontend boots from.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	admin, err := h.admins.Get()
	if err != nil || admin == nil {
		slog.Error("admin lookup failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email":       sess.Email,
		"totpEnabled": admin.TOTPEnabled,
		"twoFADone":   sess.TwoFADone,
	})
}

// TwoFASetup serves GET /api/admin/2fa/setup: generates a fresh TOTP
// secret and returns it with a QR provisioning image. Re-running setup
// before the first verify replaces the pending secret; once enrollment
// is complete the endpoint refuses.
func (h *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	admin, err := h.admins.Get()
	if err != nil || admin == nil {
		slog.Error("admin lookup failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if admin.TOTPEnabled {
		writeError(w, "two-factor authentication is already enabled", http.StatusConflict)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: admin.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.admins.SetTOTPSecret(key.Secret()); err != nil {
		slog.Error("totp secret save failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"secret": key.Secret(),
		"qr":     "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}

// TwoFAVerify serves POST /api/admin/2fa/verify. The first successful
// verify completes enrollment; every later one unlocks the session past
// the 2FA gate.
func (h *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	admin, err := h.admins.Get()
	if err != nil || admin == nil {
		slog.Error("admin lookup failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if admin.TOTPSecret == "" {
		writeError(w, "two-factor authentication is not set up", http.StatusBadRequest)
		return
	}

	if !totp.Validate(strings.TrimSpace(req.Code), admin.TOTPSecret) {
		writeError(w, "invalid code", http.StatusUnauthorized)
		return
	}

	if !admin.TOTPEnabled {
		if err := h.admins.EnableTOTP(); err != nil {
			slog.Error("totp enable failed", "error", err)
			writeError(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	sess.TwoFADone = true
	if err := h.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}
