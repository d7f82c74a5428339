package usecase

import (
	"context"
	"errors"
	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrRateCardNotConfigured = errors.New("rate card not configured")
)

// IRateCardUseCase exposes the provider's rate card.
//
// Load distinguishes "never configured" (ErrRateCardNotConfigured) from a card
// whose values are all zero. Save validates and overwrites the whole card.
type IRateCardUseCase interface {
	Load(ctx context.Context) (entities.RateCard, error)
	Save(ctx context.Context, card entities.RateCard) (entities.RateCard, error)
}

type RateCardUseCase struct {
	repo     interfaces.IRateCardRepository
	identity interfaces.IIdentityProvider
	log      zerolog.Logger
}

var _ IRateCardUseCase = (*RateCardUseCase)(nil)

func NewRateCardUseCase(repo interfaces.IRateCardRepository, identity interfaces.IIdentityProvider, log zerolog.Logger) *RateCardUseCase {
	return &RateCardUseCase{repo: repo, identity: identity, log: log}
}

func (u *RateCardUseCase) Load(ctx context.Context) (entities.RateCard, error) {
	providerID, err := actingProvider(ctx, u.identity)
	if err != nil {
		return entities.RateCard{}, err
	}
	return loadRateCard(ctx, u.repo, providerID)
}

func (u *RateCardUseCase) Save(ctx context.Context, card entities.RateCard) (entities.RateCard, error) {
	providerID, err := actingProvider(ctx, u.identity)
	if err != nil {
		return entities.RateCard{}, err
	}

	// the card always belongs to the caller, whatever the payload said
	card.ProviderID = providerID
	card = card.Normalized()
	if err := entities.ValidateRateCard(card); err != nil {
		return entities.RateCard{}, err
	}

	if err := u.repo.Save(ctx, card); err != nil {
		u.log.Error().Err(err).Str("provider_id", providerID).Msg("[rates][usecase] save failed")
		return entities.RateCard{}, err
	}
	u.log.Info().Str("provider_id", providerID).Msg("[rates][usecase] saved")
	return card, nil
}

func loadRateCard(ctx context.Context, repo interfaces.IRateCardRepository, providerID string) (entities.RateCard, error) {
	card, err := repo.Load(ctx, providerID)
	if err != nil {
		return entities.RateCard{}, err
	}
	if card.ProviderID == "" {
		return entities.RateCard{}, ErrRateCardNotConfigured
	}
	return card.Normalized(), nil
}

// actingProvider resolves the provider for the current call and fails closed.
func actingProvider(ctx context.Context, identity interfaces.IIdentityProvider) (string, error) {
	if identity == nil {
		return "", interfaces.ErrNoProvider
	}
	providerID, err := identity.ProviderID(ctx)
	if err != nil {
		return "", err
	}
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return "", interfaces.ErrNoProvider
	}
	return providerID, nil
}
