package impl

import (
	"context"
	"log/slog"
	"path"
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

// tokenRefreshWindow is how close to expiry an access token gets refreshed.
const tokenRefreshWindow = 5 * time.Minute

type cloudFileService struct {
	credentialRepo repository.CredentialRepository
	oauthProvider  service.StorageOAuthProvider
	storage        service.CloudStorageClient
	tempStore      service.TempStore
	logger         *slog.Logger
	now            func() time.Time
}

// CloudFileServiceParams holds dependencies for the cloud file gateway, injected by Fx.
type CloudFileServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	OAuthProvider  service.StorageOAuthProvider
	Storage        service.CloudStorageClient
	TempStore      service.TempStore
	Logger         *slog.Logger
}

// NewCloudFileService creates the cloud file gateway.
func NewCloudFileService(params CloudFileServiceParams) usecase.CloudFileUsecase {
	return &cloudFileService{
		credentialRepo: params.CredentialRepo,
		oauthProvider:  params.OAuthProvider,
		storage:        params.Storage,
		tempStore:      params.TempStore,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *cloudFileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListFiles lists the supported media files below folderPath.
func (s *cloudFileService) ListFiles(ctx context.Context, userID uuid.UUID, folderPath string, recursive bool) ([]entity.RemoteFile, error) {
	accessToken, err := s.accessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	page, err := s.storage.ListFolder(ctx, accessToken, folderPath, recursive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list folder")
	}

	files := make([]entity.RemoteFile, 0, len(page.Entries))
	pages := 1
	for {
		for _, file := range page.Entries {
			if entity.IsSupportedMedia(file.Name) {
				files = append(files, file)
			}
		}
		if !page.HasMore || page.Cursor == "" {
			break
		}

		page, err = s.storage.ListFolderContinue(ctx, accessToken, page.Cursor)
		if err != nil {
			return nil, errors.Wrap(err, "failed to continue folder listing")
		}
		pages++
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelDebug, "Listed cloud files",
		slog.String("folder", folderPath),
		slog.Int("pages", pages),
		slog.Int("files", len(files)),
	)

	return files, nil
}

// DownloadFile downloads remotePath and mirrors it to a managed temp file.
func (s *cloudFileService) DownloadFile(ctx context.Context, userID uuid.UUID, remotePath string) (*usecase.DownloadedFile, error) {
	accessToken, err := s.accessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.Download(ctx, accessToken, remotePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", remotePath)
	}

	tempPath, err := s.tempStore.Write(data, path.Ext(remotePath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store download")
	}

	return &usecase.DownloadedFile{Data: data, TempPath: tempPath}, nil
}

// GetFileMetadata returns the metadata of remotePath.
func (s *cloudFileService) GetFileMetadata(ctx context.Context, userID uuid.UUID, remotePath string) (*entity.RemoteFile, error) {
	accessToken, err := s.accessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	file, err := s.storage.GetMetadata(ctx, accessToken, remotePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get metadata of %s", remotePath)
	}

	return file, nil
}

// accessToken returns a usable access token for the user's active credential,
// refreshing and persisting it first when it is about to expire.
func (s *cloudFileService) accessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	provider := s.oauthProvider.Provider()

	credential, err := s.credentialRepo.FindActiveCredential(ctx, userID, provider)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return "", domainerrors.ErrNoCredential.WrapMessage("connect " + string(provider) + " first")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find credential")
	}

	if !credential.ExpiresWithin(s.now(), tokenRefreshWindow) {
		return credential.AccessToken, nil
	}

	if credential.RefreshToken == "" {
		return "", domainerrors.ErrTokenRefreshFailed.WrapMessage("no refresh token stored")
	}

	token, err := s.oauthProvider.Refresh(ctx, credential.RefreshToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to refresh access token")
	}

	if err := s.credentialRepo.UpdateTokens(ctx, credential.ID, token.AccessToken, token.RefreshToken, token.ExpiresAt); err != nil {
		return "", errors.Wrap(err, "failed to store refreshed token")
	}

	s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "Refreshed storage access token",
		slog.String("credential_id", credential.ID.String()),
		slog.String("provider", string(provider)),
	)

	return token.AccessToken, nil
}
