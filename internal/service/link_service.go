package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/config"
	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/store"
)

// codePattern - формат короткого кода, одинаковый для сгенерированных
// и пользовательских кодов
var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// LinkService содержит бизнес-логику для работы с короткими ссылками
type LinkService struct {
	store     store.Store
	generator Generator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(st store.Store, cfg *config.Config, logger *zap.Logger) *LinkService {
	return &LinkService{
		store:     st,
		generator: NewCodeGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}

// Create валидирует входные данные, подбирает код (пользовательский или
// сгенерированный) и сохраняет новую ссылку.
// Возвращает созданную запись и полный короткий URL.
func (s *LinkService) Create(ctx context.Context, originalURL, customCode string) (model.Link, string, error) {
	originalURL = strings.TrimSpace(originalURL)
	if originalURL == "" {
		return model.Link{}, "", ErrEmptyURL
	}

	if !isValidURL(originalURL) {
		return model.Link{}, "", ErrInvalidURL
	}

	var code model.Code

	if custom := strings.TrimSpace(customCode); custom != "" {
		if !codePattern.MatchString(custom) {
			return model.Link{}, "", ErrInvalidCustomCode
		}

		taken, err := s.store.Exists(ctx, model.Code(custom))
		if err != nil {
			return model.Link{}, "", fmt.Errorf("failed to check custom code: %w", err)
		}
		if taken {
			return model.Link{}, "", fmt.Errorf("code %s: %w", custom, ErrCodeTaken)
		}

		// Пользовательский код проверяется один раз, без цикла повторов
		code = model.Code(custom)
	} else {
		generated, err := s.generateUniqueCode(ctx)
		if err != nil {
			return model.Link{}, "", err
		}
		code = generated
	}

	link, err := s.store.Insert(ctx, code, originalURL)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Конкурентная вставка того же кода успела раньше:
			// ограничение уникальности сработало после нашей проверки
			return model.Link{}, "", fmt.Errorf("code %s: %w", code, ErrCodeTaken)
		}
		return model.Link{}, "", fmt.Errorf("failed to insert link: %w", err)
	}

	s.logger.Info("short link created",
		zap.String("code", link.ShortCode),
		zap.String("original_url", link.OriginalURL),
	)

	return link, s.shortURL(code), nil
}

// ResolveAndTrack возвращает оригинальный URL по коду, увеличивая счетчик
// переходов и отметку last_clicked. Отсутствующий код (в том числе после
// удаления) дает ErrLinkNotFound.
func (s *LinkService) ResolveAndTrack(ctx context.Context, code model.Code) (string, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("code %s: %w", code, ErrLinkNotFound)
		}
		return "", fmt.Errorf("failed to resolve code: %w", err)
	}

	if err := s.store.RegisterClick(ctx, code); err != nil {
		return "", fmt.Errorf("failed to register click: %w", err)
	}

	return link.OriginalURL, nil
}

// List возвращает ссылки, отфильтрованные по подстроке search и
// отсортированные согласно sort (неизвестные значения - как newest)
func (s *LinkService) List(ctx context.Context, search, sortValue string) ([]model.Link, error) {
	links, err := s.store.List(ctx, search, model.ParseSortMode(sortValue))
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}

// GetByCode возвращает запись по коду без учета перехода
func (s *LinkService) GetByCode(ctx context.Context, code model.Code) (model.Link, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrLinkNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to get link: %w", err)
	}

	return link, nil
}

// Delete удаляет ссылку навсегда, освобождая код для повторного
// использования будущей генерацией
func (s *LinkService) Delete(ctx context.Context, code model.Code) error {
	err := s.store.Delete(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("code %s: %w", code, ErrLinkNotFound)
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}

	s.logger.Info("short link deleted", zap.String("code", string(code)))

	return nil
}

// generateUniqueCode генерирует случайный код, проверяя его на занятость.
// Лимит попыток фиксированный, без backoff и расширения алфавита.
func (s *LinkService) generateUniqueCode(ctx context.Context) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code := s.generator.GenerateCode()

		taken, err := s.store.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check generated code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w",
		s.cfg.Retry.MaxAttempts, ErrGenerationExhausted)
}

// shortURL строит полный короткий URL из базового адреса и кода
func (s *LinkService) shortURL(code model.Code) string {
	base := strings.TrimSuffix(s.cfg.BaseURL.String(), "/")
	return base + "/" + string(code)
}

// isValidURL проверяет что строка является абсолютным http/https адресом
func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
