package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/mail"
)

// AuthServiceConfig contains policy settings for the auth service
type AuthServiceConfig struct {
	ConfirmationRequired bool
	ConfirmationTokenTTL time.Duration
	ResetTokenTTL        time.Duration
	MaxLoginAttempts     int
	LockDuration         time.Duration
	// BaseURL is used to build confirmation and reset links in emails
	BaseURL string
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		ConfirmationRequired: true,
		ConfirmationTokenTTL: 24 * time.Hour,
		ResetTokenTTL:        time.Hour,
		MaxLoginAttempts:     5,
		LockDuration:         15 * time.Minute,
		BaseURL:              "http://localhost:8080",
	}
}

// AuthService handles registration, authentication and account recovery
type AuthService struct {
	userRepo   identity.UserRepository
	tokenRepo  identity.ActionTokenRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	mailSender mail.Sender
	config     AuthServiceConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	tokenRepo identity.ActionTokenRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	mailSender mail.Sender,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		mailSender: mailSender,
		config:     config,
		logger:     logger,
	}
}

// SignUp registers a new account. When confirmation is required the
// account stays pending and a confirmation link is emailed.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	s.logger.Info("Sign-up attempt", zap.String("email", input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	var user *identity.User
	if s.config.ConfirmationRequired {
		user, err = identity.NewUser(input.Email, input.Password)
	} else {
		user, err = identity.NewConfirmedUser(input.Email, input.Password)
	}
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if s.config.ConfirmationRequired {
		if err := s.sendConfirmationMail(ctx, user); err != nil {
			// The account exists; the link can be re-sent later
			s.logger.Error("Failed to send confirmation mail", zap.Error(err))
		}
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.Bool("confirmation_required", s.config.ConfirmationRequired))

	return &SignUpResult{
		User:                 ToUserInfo(user),
		ConfirmationRequired: s.config.ConfirmationRequired,
	}, nil
}

// SignIn authenticates a user and returns a token pair. A wrong email and
// a wrong password produce the same INVALID_CREDENTIALS error; an
// unconfirmed email is reported distinctly so clients can offer to
// re-send the confirmation link.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	s.logger.Info("Sign-in attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Unknown email during sign-in", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if user.IsLocked() {
		s.logger.Warn("Sign-in attempt for locked account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
	}
	if user.IsDeactivated() {
		s.logger.Warn("Sign-in attempt for deactivated account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(input.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to update user after sign-in failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("email", input.Email),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	// Password was correct but the email is still unconfirmed
	if user.IsPending() && !user.IsEmailConfirmed() {
		s.logger.Warn("Sign-in attempt for unconfirmed account", zap.String("email", input.Email))
		return nil, shared.ErrEmailNotConfirmed
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:         user.ID,
		Email:          user.Email,
		EmailConfirmed: user.IsEmailConfirmed(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Don't fail the sign-in over login bookkeeping
		s.logger.Error("Failed to update user after successful sign-in", zap.Error(err))
	}

	s.logger.Info("User signed in",
		zap.String("email", input.Email),
		zap.String("user_id", user.ID.String()))

	return &SignInResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  ToUserInfo(user),
	}, nil
}

// SignOut revokes the caller's access token by blacklisting its JTI for
// the remainder of its lifetime
func (s *AuthService) SignOut(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to blacklist token on sign-out", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to sign out")
	}

	s.logger.Info("User signed out", zap.String("user_id", claims.UserID))
	return nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		switch err {
		case auth.ErrExpiredToken:
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	// Honor user-wide invalidation, e.g. after a password reset
	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.IssuedAt.Time)
	if err != nil {
		s.logger.Error("Failed to check token invalidation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
	}
	if invalidated {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Account no longer exists")
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Email, user.IsEmailConfirmed())
	if err != nil {
		if err == auth.ErrMaxRefreshExceeded {
			return nil, shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please sign in again")
		}
		s.logger.Error("Failed to refresh token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to refresh tokens")
	}

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// ConfirmEmail consumes a confirmation token and activates the account
func (s *AuthService) ConfirmEmail(ctx context.Context, input ConfirmEmailInput) (*UserInfo, error) {
	token, err := s.tokenRepo.FindByToken(ctx, input.Token, identity.TokenPurposeEmailConfirmation)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid or expired confirmation link")
	}

	if err := token.Consume(); err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid or expired confirmation link")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}

	if err := user.ConfirmEmail(); err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Email confirmed", zap.String("user_id", user.ID.String()))

	info := ToUserInfo(user)
	return &info, nil
}

// ResendConfirmation issues a fresh confirmation link. It reports success
// for unknown emails so account existence is not leaked.
func (s *AuthService) ResendConfirmation(ctx context.Context, input ResendConfirmationInput) error {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Info("Confirmation re-send for unknown email", zap.String("email", input.Email))
		return nil
	}

	if user.IsEmailConfirmed() {
		return shared.NewDomainError("INVALID_STATE", "Email is already confirmed")
	}

	if err := s.tokenRepo.InvalidateForUser(ctx, user.ID, identity.TokenPurposeEmailConfirmation); err != nil {
		return err
	}

	return s.sendConfirmationMail(ctx, user)
}

// RequestPasswordReset emails a reset link. Unknown emails are silently
// accepted so account existence is not leaked.
func (s *AuthService) RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) error {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Info("Password reset for unknown email", zap.String("email", input.Email))
		return nil
	}

	if err := s.tokenRepo.InvalidateForUser(ctx, user.ID, identity.TokenPurposePasswordReset); err != nil {
		return err
	}

	token, err := identity.NewActionToken(user.ID, identity.TokenPurposePasswordReset, s.config.ResetTokenTTL)
	if err != nil {
		return err
	}
	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return err
	}

	msg := mail.Message{
		To:      user.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf("A password reset was requested for your account.\n\n"+
			"Reset your password: %s/reset-password?token=%s\n\n"+
			"If you did not request this, you can ignore this email.",
			s.config.BaseURL, token.Token),
	}
	if err := s.mailSender.Send(ctx, msg); err != nil {
		s.logger.Error("Failed to send password reset mail", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to send password reset email")
	}

	s.logger.Info("Password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

// ResetPassword consumes a reset token, sets the new password and revokes
// all outstanding sessions for the account
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	token, err := s.tokenRepo.FindByToken(ctx, input.Token, identity.TokenPurposePasswordReset)
	if err != nil {
		return shared.NewDomainError("TOKEN_INVALID", "Invalid or expired reset link")
	}

	if err := token.Consume(); err != nil {
		return shared.NewDomainError("TOKEN_INVALID", "Invalid or expired reset link")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}
	if user.IsLocked() {
		_ = user.Unlock()
	}

	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	// Force sign-in with the new password everywhere
	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), ttl); err != nil {
		s.logger.Error("Failed to revoke sessions after password reset", zap.Error(err))
	}

	s.logger.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}

// GetCurrentUser returns the account behind a validated access token
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := ToUserInfo(user)
	return &info, nil
}

func (s *AuthService) sendConfirmationMail(ctx context.Context, user *identity.User) error {
	token, err := identity.NewActionToken(user.ID, identity.TokenPurposeEmailConfirmation, s.config.ConfirmationTokenTTL)
	if err != nil {
		return err
	}
	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return err
	}

	msg := mail.Message{
		To:      user.Email,
		Subject: "Confirm your email",
		Body: fmt.Sprintf("Welcome!\n\n"+
			"Confirm your email to activate your account: %s/api/v1/auth/confirm?token=%s\n\n"+
			"The link expires in %s.",
			s.config.BaseURL, token.Token, s.config.ConfirmationTokenTTL),
	}
	return s.mailSender.Send(ctx, msg)
}
