package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/pkg/utils"
)

const entityAccount = "account"

type AccountService interface {
	List(ctx context.Context, projectID, platform string) ([]*models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, actor models.Actor, in *transfer.AccountInput) (*models.Account, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.AccountInput) (*models.Account, error)
	Remove(ctx context.Context, actor models.Actor, id string) error
	// AccessToken returns the decrypted token of an account.
	AccessToken(ctx context.Context, id string) (string, error)
}

type accountService struct {
	a   repository.AccountRepository
	yt  YoutubeService
	key []byte
	ar  activityRecorder
}

// NewAccountService encrypts tokens with secretKey. yt may be nil, which
// disables channel lookups.
func NewAccountService(
	a repository.AccountRepository,
	al repository.ActivityLogRepository,
	yt YoutubeService,
	secretKey string) AccountService {
	return &accountService{
		a:   a,
		yt:  yt,
		key: []byte(secretKey),
		ar:  activityRecorder{al: al},
	}
}

func (s *accountService) List(ctx context.Context, projectID, platform string) ([]*models.Account, error) {
	return s.a.List(ctx, projectID, platform)
}

func (s *accountService) Get(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, notFound(entityAccount)
	}
	return account, nil
}

func (s *accountService) Create(ctx context.Context, actor models.Actor, in *transfer.AccountInput) (*models.Account, error) {
	account := &models.Account{IsActive: true}
	if err := s.apply(in, account); err != nil {
		return nil, err
	}
	s.resolveChannel(ctx, account)

	id, err := s.a.Create(ctx, nil, account)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, entityAccount, id, account.Platform)

	return s.Get(ctx, id)
}

func (s *accountService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.AccountInput) (*models.Account, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(in, account); err != nil {
		return nil, err
	}
	s.resolveChannel(ctx, account)

	if err := s.a.Update(ctx, account); err != nil {
		return nil, storeErr(err, entityAccount)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entityAccount, id, account.Platform)

	return s.Get(ctx, id)
}

func (s *accountService) Remove(ctx context.Context, actor models.Actor, id string) error {
	if err := s.a.Remove(ctx, id); err != nil {
		return storeErr(err, entityAccount)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entityAccount, id, "")
	return nil
}

func (s *accountService) AccessToken(ctx context.Context, id string) (string, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if account.AccessToken == "" {
		return "", nil
	}
	return utils.Decrypt(account.AccessToken, s.key)
}

// apply copies input onto account. A blank token keeps the stored one.
func (s *accountService) apply(in *transfer.AccountInput, account *models.Account) error {
	account.ProjectID = in.ProjectID
	account.Platform = in.Platform
	account.ChannelID = in.ChannelID
	account.ChannelName = in.ChannelName
	account.ChannelLink = in.ChannelLink
	if in.IsActive != nil {
		account.IsActive = *in.IsActive
	}
	if in.AccessToken != "" {
		encrypted, err := utils.Encrypt([]byte(in.AccessToken), s.key)
		if err != nil {
			return err
		}
		account.AccessToken = encrypted
	}
	return nil
}

// resolveChannel fills a blank YouTube channel name or link. Lookup failures
// leave the account as entered.
func (s *accountService) resolveChannel(ctx context.Context, account *models.Account) {
	if s.yt == nil || account.Platform != models.PlatformYoutube {
		return
	}
	if account.ChannelName != "" && account.ChannelLink != "" {
		return
	}

	info, err := s.yt.Channel(ctx, account.ChannelID)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	if account.ChannelName == "" {
		account.ChannelName = info.Title
	}
	if account.ChannelLink == "" {
		account.ChannelLink = info.Link
	}
}
