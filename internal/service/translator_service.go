package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// TranslatorServiceImpl implements ports.EventTranslator.
type TranslatorServiceImpl struct {
	eventRepo  ports.EventRepository
	tokenizer  ports.Tokenizer
	tokenCache ports.TokenCache // nil = caching disabled
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewTranslatorService creates a new TranslatorServiceImpl.
func NewTranslatorService(
	eventRepo ports.EventRepository,
	tokenizer ports.Tokenizer,
	tokenCache ports.TokenCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *TranslatorServiceImpl {
	return &TranslatorServiceImpl{
		eventRepo:  eventRepo,
		tokenizer:  tokenizer,
		tokenCache: tokenCache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// Translate fetches the BizEvent, tokenizes debtor and payer fiscal codes
// and produces the receipt-shape fields. No persistence side effects.
func (s *TranslatorServiceImpl) Translate(ctx context.Context, eventID string) (*ports.TranslatedEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if event == nil {
		return nil, apperror.ErrEventNotFound(eventID)
	}

	debtorToken, err := s.tokenize(ctx, event.Debtor.FiscalCode)
	if err != nil {
		return nil, err
	}
	payerToken, err := s.tokenize(ctx, event.Payer.FiscalCode)
	if err != nil {
		return nil, err
	}

	return &ports.TranslatedEvent{
		EventID:          event.ID,
		PaymentManagerID: event.PaymentManagerID,
		DebtorToken:      debtorToken,
		PayerToken:       payerToken,
		Subject:          event.Transaction.RemittanceInf,
		Amount:           event.Transaction.GrandTotal,
		TotalNotice:      event.Transaction.TotalNotice,
		CartID:           event.Transaction.CartID,
	}, nil
}

// tokenize resolves one PII value to its opaque token, consulting the cache
// first. Cache failures degrade to a direct tokenizer call.
func (s *TranslatorServiceImpl) tokenize(ctx context.Context, pii string) (string, error) {
	if pii == "" {
		return "", nil
	}

	digest := piiDigest(pii)

	if s.tokenCache != nil {
		token, err := s.tokenCache.Get(ctx, digest)
		if err != nil {
			s.log.Warn().Err(err).Msg("token cache lookup failed, calling tokenizer directly")
		} else if token != "" {
			return token, nil
		}
	}

	token, err := s.tokenizer.Tokenize(ctx, pii)
	if err != nil {
		return "", err
	}

	if s.tokenCache != nil {
		if err := s.tokenCache.Set(ctx, digest, token, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache token")
		}
	}

	return token, nil
}

// piiDigest derives the cache key for a PII value. The raw value never
// reaches the cache.
func piiDigest(pii string) string {
	sum := sha256.Sum256([]byte(pii))
	return hex.EncodeToString(sum[:])
}
