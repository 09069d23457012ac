package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	config "github.com/maheshrc27/contentops/configs"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

type AuthService interface {
	AuthCodeURL(state string) string
	LoginCallback(ctx context.Context, code string) (*models.User, error)
}

type authService struct {
	oauth *oauth2.Config
	u     repository.UserRepository
}

func NewAuthService(cfg *config.Config, u repository.UserRepository) AuthService {
	return &authService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		u: u,
	}
}

func (s *authService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// LoginCallback exchanges the code and returns the matching user, creating
// one on first login. The very first user becomes admin; later ones start
// as viewers.
func (s *authService) LoginCallback(ctx context.Context, code string) (*models.User, error) {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return nil, invalid("code is empty")
	}

	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" || s.oauth.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return nil, err
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	userInfo, err := GetUserInfo(s.oauth.Client(ctx, token))
	if err != nil {
		return nil, err
	}

	return s.upsert(ctx, userInfo)
}

func (s *authService) upsert(ctx context.Context, info *transfer.GoogleUserInfo) (*models.User, error) {
	user, isExist, err := s.u.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}

	if isExist {
		if user.GoogleID == "" || user.ProfilePicture != info.Picture {
			user.GoogleID = info.ID
			user.ProfilePicture = info.Picture
			if err := s.u.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	count, err := s.u.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := models.RoleViewer
	if count == 0 {
		role = models.RoleAdmin
	}

	user = &models.User{
		GoogleID:       info.ID,
		Email:          info.Email,
		Name:           info.Name,
		Role:           role,
		ProfilePicture: info.Picture,
	}
	id, err := s.u.Create(ctx, nil, user)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	user.ID = id
	return user, nil
}

func GetUserInfo(client *http.Client) (*transfer.GoogleUserInfo, error) {
	response, err := client.Get(googleUserInfoURL)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error fetching user info: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		slog.Info("Unexpected response status")
		return nil, fmt.Errorf("unexpected response status: %d", response.StatusCode)
	}

	var userInfo transfer.GoogleUserInfo
	if err := json.NewDecoder(response.Body).Decode(&userInfo); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error decoding user info: %w", err)
	}

	if userInfo.Email == "" {
		return nil, errors.New("google account has no email")
	}
	return &userInfo, nil
}
