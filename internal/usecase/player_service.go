package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

// ListPlayersInput carries the raw query filters of the directory.
type ListPlayersInput struct {
	Role   string
	Club   string
	Status string
	TeamID *int64
	Search string
}

type CreatePlayerInput struct {
	Name string
	Club string
	Role string
}

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, input ListPlayersInput) ([]player.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	filter := player.Filter{
		Club:   strings.TrimSpace(input.Club),
		TeamID: input.TeamID,
		Search: strings.TrimSpace(input.Search),
	}
	if raw := strings.TrimSpace(input.Role); raw != "" {
		role, ok := player.ParseRole(raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown ruolo %q", ErrInvalidInput, raw)
		}
		filter.Role = role
	}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status, ok := player.ParseStatus(raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
		}
		filter.Status = status
	}

	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) ListPlayersByRole(ctx context.Context, role player.Role) ([]player.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByRole")
	defer span.End()

	players, err := s.playerRepo.List(ctx, player.Filter{Role: role})
	if err != nil {
		return nil, fmt.Errorf("list players by role: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.View{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.View{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.View{}, fmt.Errorf("%w: giocatore=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	role, ok := player.ParseRole(input.Role)
	if !ok {
		return player.View{}, fmt.Errorf("%w: unknown ruolo %q", ErrInvalidInput, input.Role)
	}
	p := player.Player{
		Name:   strings.TrimSpace(input.Name),
		Club:   strings.TrimSpace(input.Club),
		Role:   role,
		Status: player.StatusAvailable,
	}
	p.ID = player.DeriveID(p.Name, p.Club)
	if err := p.Validate(); err != nil {
		return player.View{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		if isAlreadyExists(err) {
			return player.View{}, fmt.Errorf("%w: giocatore %s already exists", ErrConflict, p.ID)
		}
		return player.View{}, fmt.Errorf("create player: %w", err)
	}
	s.logger.InfoContext(ctx, "player created", "player_id", p.ID, "ruolo", p.Role)

	return s.GetPlayer(ctx, p.ID)
}

var exportHeader = []string{
	"id", "nome", "squadra", "ruolo", "status", "fantasquadra", "prezzo",
	"gazzetta", "fascia", "consiglio", "voto", "mia_valutazione", "note", "preferito", "wishlist",
}

// ExportCSV writes the enriched directory as a comma separated listone.
func (s *PlayerService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ExportCSV")
	defer span.End()

	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list players for export: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("write export header: %w", err)
	}
	for _, p := range players {
		if err := cw.Write(exportRow(p)); err != nil {
			return 0, fmt.Errorf("write export row %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush export: %w", err)
	}

	if _, err := w.Write(buf.B); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return len(players), nil
}

func exportRow(p player.View) []string {
	return []string{
		p.ID,
		p.Name,
		p.Club,
		string(p.Role),
		string(p.Status),
		p.TeamName,
		formatOptionalInt(p.Price),
		formatOptionalFloat(p.Gazzetta),
		derefString(p.Fascia),
		derefString(p.Consiglio),
		formatOptionalFloat(p.Voto),
		formatOptionalRating(p.MyRating),
		derefString(p.Note),
		strconv.FormatBool(p.Favourite),
		strconv.FormatBool(p.InWishlist),
	}
}

func formatOptionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptionalRating(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// ExportFileName names the listone download.
func ExportFileName(now time.Time) string {
	return "giocatori-" + now.UTC().Format("20060102-150405") + ".csv"
}
