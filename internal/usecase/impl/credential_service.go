package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	deliverycontext "adcopy/internal/delivery/context"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/repository"
	"adcopy/internal/domain/service"
	"adcopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const oauthStateTTL = 10 * time.Minute

// oauthStates holds pending OAuth states, each bound to the user that asked
// for the consent URL. A state can be consumed once.
type oauthStates struct {
	mu      sync.Mutex
	pending map[string]pendingState
	now     func() time.Time
}

type pendingState struct {
	userID    uuid.UUID
	expiresAt time.Time
}

func newOAuthStates(now func() time.Time) *oauthStates {
	return &oauthStates{
		pending: make(map[string]pendingState),
		now:     now,
	}
}

func (s *oauthStates) issue(userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}
	state := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, p := range s.pending {
		if now.After(p.expiresAt) {
			delete(s.pending, key)
		}
	}
	s.pending[state] = pendingState{userID: userID, expiresAt: now.Add(oauthStateTTL)}

	return state, nil
}

// consume reports whether state was issued to userID and has not expired.
func (s *oauthStates) consume(state string, userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[state]
	if !ok {
		return false
	}
	delete(s.pending, state)

	return p.userID == userID && !s.now().After(p.expiresAt)
}

type credentialService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	oauthProvider  service.StorageOAuthProvider
	storage        service.CloudStorageClient
	states         *oauthStates
	logger         *slog.Logger
}

// CredentialServiceParams holds dependencies for the credential service, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	OAuthProvider  service.StorageOAuthProvider
	Storage        service.CloudStorageClient
	Logger         *slog.Logger
}

// NewCredentialService creates the credential service.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		oauthProvider:  params.OAuthProvider,
		storage:        params.Storage,
		states:         newOAuthStates(time.Now),
		logger:         params.Logger,
	}
}

func (s *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *credentialService) AuthorizationURL(_ context.Context, userID uuid.UUID) (string, error) {
	state, err := s.states.issue(userID)
	if err != nil {
		return "", err
	}

	return s.oauthProvider.AuthCodeURL(state), nil
}

// Connect exchanges the code, looks up the account and swaps the active
// credential in one transaction.
func (s *credentialService) Connect(ctx context.Context, userID uuid.UUID, code, state string) (*entity.Credential, error) {
	if !s.states.consume(state, userID) {
		return nil, domainerrors.ErrOAuthCodeInvalid.WithDetails("state is unknown, expired or issued to another user")
	}

	token, err := s.oauthProvider.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	account, err := s.storage.GetCurrentAccount(ctx, token.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read provider account")
	}

	accountID := account.AccountID
	if accountID == "" {
		accountID = token.AccountID
	}

	provider := s.oauthProvider.Provider()
	credential := &entity.Credential{
		ID:                   uuid.New(),
		UserID:               userID,
		Provider:             provider,
		ProviderAccountID:    accountID,
		ProviderAccountEmail: account.Email,
		AccessToken:          token.AccessToken,
		RefreshToken:         token.RefreshToken,
		TokenExpiresAt:       token.ExpiresAt,
		Scope:                token.Scope,
		IsActive:             true,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewCredentialRepository()
		if _, err := repo.DeactivateCredentials(ctx, userID, provider); err != nil {
			return errors.Wrap(err, "failed to deactivate previous credentials")
		}

		return errors.Wrap(repo.CreateCredential(ctx, credential), "failed to create credential")
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Storage provider connected",
		slog.String("user_id", userID.String()),
		slog.String("provider", string(provider)),
		slog.String("account_id", accountID),
	)

	return credential, nil
}

func (s *credentialService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	provider := s.oauthProvider.Provider()

	count, err := s.credentialRepo.DeactivateCredentials(ctx, userID, provider)
	if err != nil {
		return errors.Wrap(err, "failed to deactivate credentials")
	}
	if count == 0 {
		return domainerrors.ErrNoCredential
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Storage provider disconnected",
		slog.String("user_id", userID.String()),
		slog.Int64("deactivated", count),
	)

	return nil
}

func (s *credentialService) Status(ctx context.Context, userID uuid.UUID) (*usecase.ConnectionStatus, error) {
	provider := s.oauthProvider.Provider()
	status := &usecase.ConnectionStatus{Provider: provider}

	credential, err := s.credentialRepo.FindActiveCredential(ctx, userID, provider)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return status, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential")
	}

	connectedAt := credential.CreatedAt
	status.Connected = true
	status.AccountID = credential.ProviderAccountID
	status.AccountEmail = credential.ProviderAccountEmail
	status.TokenExpiresAt = credential.TokenExpiresAt
	status.ConnectedAt = &connectedAt

	return status, nil
}
