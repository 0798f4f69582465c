// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"churchstats_backend/internals/configs"
	accessModel "churchstats_backend/internals/features/access/model"
	authModel "churchstats_backend/internals/features/users/auth/model"
	userModel "churchstats_backend/internals/features/users/user/model"
	helper "churchstats_backend/internals/helpers"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

/* ========================== LOGIN ========================== */
// POST /auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		// pesan seragam supaya tidak bocor email mana yang terdaftar
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	accessToken, refreshToken, err := issueTokenPair(db, &user)
	if err != nil {
		log.Println("[ERROR] issueTokenPair:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	if err := storeRefreshToken(db, user.ID, refreshToken, c.Get("User-Agent"), c.IP()); err != nil {
		log.Println("[ERROR] storeRefreshToken:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	setRefreshCookie(c, refreshToken)

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ========================== LOGOUT ========================== */
// POST /auth/logout (butuh auth)
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		entry := authModel.TokenBlacklist{
			Token:     raw,
			ExpiredAt: time.Now().UTC().Add(accessTTL),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Println("[WARNING] Gagal blacklist token:", err)
		}
	}

	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		if err := revokeRefreshTokenByHash(db, refresh); err != nil {
			log.Println("[WARNING] Gagal revoke refresh token:", err)
		}
	}

	clearRefreshCookie(c)
	return helper.Success(c, "Logout berhasil", nil)
}

/* ========================== REFRESH TOKEN ========================== */
// POST /auth/refresh-token (cookie-based)
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Refresh Secret")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Hash refresh harus dikenal & masih aktif
	rt, err := findActiveRefreshToken(db, refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}
	if rt.UserID != userID {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, terbitkan pasangan baru
	now := time.Now().UTC()
	if err := db.Model(&authModel.RefreshToken{}).
		Where("id = ?", rt.ID).
		Update("revoked_at", now).Error; err != nil {
		log.Println("[WARNING] revoke old refresh:", err)
	}

	newAccess, newRefresh, err := issueTokenPair(db, &user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token baru")
	}
	if err := storeRefreshToken(db, user.ID, newRefresh, c.Get("User-Agent"), c.IP()); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan refresh baru")
	}

	setRefreshCookie(c, newRefresh)

	return helper.Success(c, "Token diperbarui", fiber.Map{
		"access_token": newAccess,
	})
}

/* ========================== CHANGE PASSWORD ========================== */
// POST /auth/change-password (butuh auth)
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	if len(input.NewPassword) < 8 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Password baru minimal 8 karakter")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Password saat ini salah")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password baru")
	}

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", string(newHash)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	return helper.Success(c, "Password berhasil diubah", nil)
}

/* ========================== Token builders ========================== */

// issueTokenPair buat access + refresh JWT. Klaim access memuat role global,
// role lokal (lokalitas home), dan daftar locality_ids yang bisa diakses.
func issueTokenPair(db *gorm.DB, user *userModel.UserModel) (string, string, error) {
	jwtSecret := configs.JWTSecret
	refreshSecret := configs.JWTRefreshSecret
	if jwtSecret == "" || refreshSecret == "" {
		return "", "", errors.New("JWT secrets belum diset")
	}

	now := time.Now().UTC()

	localRole, localityIDs := loadAccessClaims(db, user.ID)

	accessClaims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if localRole != "" {
		accessClaims["local_role"] = localRole
	}
	if len(localityIDs) > 0 {
		accessClaims["locality_ids"] = localityIDs
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// loadAccessClaims ambil role lokal (home locality) & daftar locality dari
// profil akses. Kegagalan baca tidak menggagalkan login, klaim saja yang kosong.
func loadAccessClaims(db *gorm.DB, userID uuid.UUID) (string, []string) {
	var profile accessModel.UserAccessProfileModel
	if err := db.Where("user_access_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[WARNING] load access profile:", err)
		}
		return "", nil
	}

	localityIDs := []string(profile.UserAccessProfileAccessibleLocalityIds)

	localRole := ""
	if profile.UserAccessProfileHomeLocalityId != nil {
		var lr accessModel.LocalRoleModel
		if err := db.Where("local_role_user_id = ? AND local_role_locality_id = ?",
			userID, *profile.UserAccessProfileHomeLocalityId).
			First(&lr).Error; err == nil {
			localRole = lr.LocalRoleRole
		}
	}

	return localRole, localityIDs
}

/* ========================== Refresh token storage ========================== */

// computeRefreshHash: HMAC-SHA256 supaya DB hanya pegang hash, bukan plaintext.
func computeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func storeRefreshToken(db *gorm.DB, userID uuid.UUID, token, userAgent, ip string) error {
	rt := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(token),
		ExpiresAt: time.Now().UTC().Add(refreshTTL),
	}
	if ua := strings.TrimSpace(userAgent); ua != "" {
		rt.UserAgent = &ua
	}
	if addr := strings.TrimSpace(ip); addr != "" {
		rt.IP = &addr
	}
	return db.Create(&rt).Error
}

func findActiveRefreshToken(db *gorm.DB, token string) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", computeRefreshHash(token)).
		Limit(1).
		Find(&rt).Error; err != nil {
		return nil, err
	}
	if rt.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &rt, nil
}

func revokeRefreshTokenByHash(db *gorm.DB, token string) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", computeRefreshHash(token)).
		Update("revoked_at", now).Error
}

/* ========================== Cookies ========================== */

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().UTC().Add(refreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().UTC().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}
