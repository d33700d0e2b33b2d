package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/adapters"
	"github.com/goal-planner/backend/internal/integration/persistence"
	"github.com/goal-planner/backend/internal/integration/persistence/persistencetest"
)

type authFixture struct {
	register *RegisterUserUseCase
	login    *LoginUserUseCase
	refresh  *RefreshTokenUseCase
	logout   *LogoutUserUseCase
}

func newAuthFixture(t *testing.T, seedPresets bool) *authFixture {
	t.Helper()
	db := persistencetest.NewDB(t)
	users := persistence.NewUserRepository(db)
	categories := persistence.NewCategoryRepository(db)
	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	tokens := adapters.NewTokenService("test-secret", time.Minute, time.Hour, persistence.NewTokenRepository(db))

	return &authFixture{
		register: NewRegisterUserUseCase(users, categories, passwords, tokens, seedPresets),
		login:    NewLoginUserUseCase(users, passwords, tokens),
		refresh:  NewRefreshTokenUseCase(tokens),
		logout:   NewLogoutUserUseCase(tokens),
	}
}

func codeOf(err error) string {
	if coded, ok := domainerror.AsCoded(err); ok {
		return coded.ErrorCode()
	}
	return ""
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds presets", func(t *testing.T) {
		f := newAuthFixture(t, true)
		out, err := f.register.Execute(ctx, RegisterUserInput{Email: " New@Example.com ", Name: "New", Password: "SecurePass123!"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.User.Email != "new@example.com" {
			t.Errorf("Email = %q, want normalized", out.User.Email)
		}
		if len(out.Categories) != 5 {
			t.Errorf("seeded %d categories, want 5", len(out.Categories))
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("tokens should be issued")
		}
	})

	t.Run("seeding disabled", func(t *testing.T) {
		f := newAuthFixture(t, false)
		out, err := f.register.Execute(ctx, RegisterUserInput{Email: "plain@example.com", Name: "Plain", Password: "SecurePass123!"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Categories) != 0 {
			t.Errorf("seeded %d categories, want 0", len(out.Categories))
		}
	})

	f := newAuthFixture(t, true)
	if _, err := f.register.Execute(ctx, RegisterUserInput{Email: "taken@example.com", Name: "A", Password: "SecurePass123!"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input RegisterUserInput
		code  string
	}{
		{"duplicate email", RegisterUserInput{Email: "TAKEN@example.com", Name: "B", Password: "SecurePass123!"}, "AUTH-010001"},
		{"invalid email", RegisterUserInput{Email: "not-an-email", Name: "B", Password: "SecurePass123!"}, "AUTH-010004"},
		{"weak password", RegisterUserInput{Email: "weak@example.com", Name: "B", Password: "short"}, "AUTH-010003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, tt.input)
			if got := codeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, false)
	if _, err := f.register.Execute(ctx, RegisterUserInput{Email: "user@example.com", Name: "User", Password: "SecurePass123!"}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.login.Execute(ctx, LoginUserInput{Email: "user@example.com", Password: "WrongPass123!"}); codeOf(err) != "AUTH-020001" {
		t.Errorf("wrong password: %v", err)
	}
	if _, err := f.login.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "SecurePass123!"}); codeOf(err) != "AUTH-020001" {
		t.Errorf("unknown email: %v", err)
	}

	login, err := f.login.Execute(ctx, LoginUserInput{Email: "user@example.com", Password: "SecurePass123!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	rotated, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken}); codeOf(err) != "AUTH-030001" {
		t.Errorf("reusing a rotated refresh token: %v", err)
	}

	if _, err := f.logout.Execute(ctx, LogoutUserInput{RefreshToken: rotated.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: rotated.RefreshToken}); codeOf(err) != "AUTH-030001" {
		t.Errorf("refresh after logout: %v", err)
	}
}
