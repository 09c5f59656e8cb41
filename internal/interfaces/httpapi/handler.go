package httpapi

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/riskibarqy/fantacalcio/internal/usecase"
)

const defaultUploadMaxBytes int64 = 10 << 20

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	playerService     *usecase.PlayerService
	teamService       *usecase.TeamService
	auctionService    *usecase.AuctionService
	wishlistService   *usecase.WishlistService
	quotationService  *usecase.QuotationService
	importService     *usecase.ImportService
	statisticsService *usecase.StatisticsService
	backupService     *usecase.BackupService
	db                Pinger
	uploadMaxBytes    int64
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	auctionService *usecase.AuctionService,
	wishlistService *usecase.WishlistService,
	quotationService *usecase.QuotationService,
	importService *usecase.ImportService,
	statisticsService *usecase.StatisticsService,
	backupService *usecase.BackupService,
	db Pinger,
	uploadMaxBytes int64,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = defaultUploadMaxBytes
	}

	return &Handler{
		playerService:     playerService,
		teamService:       teamService,
		auctionService:    auctionService,
		wishlistService:   wishlistService,
		quotationService:  quotationService,
		importService:     importService,
		statisticsService: statisticsService,
		backupService:     backupService,
		db:                db,
		uploadMaxBytes:    uploadMaxBytes,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "database ping failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: database ping: %v", usecase.ErrDependencyUnavailable, err))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a JSON body into dst and runs the struct validation tags.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

// openUpload returns the multipart file posted under field, bounded by uploadMaxBytes.
func (h *Handler) openUpload(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)
	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w: upload exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit)
		}
		return nil, nil, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, fmt.Errorf("%w: no file uploaded in field %q", usecase.ErrInvalidInput, field)
		}
		return nil, nil, fmt.Errorf("%w: read upload %q: %v", usecase.ErrInvalidInput, field, err)
	}

	return file, header, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
