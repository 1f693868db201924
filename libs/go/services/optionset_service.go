package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/logger"

	"go.uber.org/zap"
)

// OptionSetService resolves option-set labels to integer values through
// the CRM metadata API. Successful lookups are cached for the process
// lifetime; option-set metadata is static per deployment. Misses are not
// cached so a metadata publish is picked up without a restart.
type OptionSetService struct {
	crm    dataverse.API
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]int
}

// NewOptionSetService creates an option-set resolver backed by the CRM.
func NewOptionSetService(crm dataverse.API) *OptionSetService {
	return &OptionSetService{
		crm:    crm,
		logger: logger.Log,
		cache:  make(map[string]int),
	}
}

func cacheKey(entity, attribute, label string) string {
	return fmt.Sprintf("%s|%s|%s", entity, attribute, label)
}

// Resolve maps a label to its option-set value. Unknown labels return an
// error wrapping dataverse.ErrOptionNotFound; the value 0 is only ever
// returned for a genuine option with value 0.
func (s *OptionSetService) Resolve(ctx context.Context, entityLogicalName, attributeLogicalName, label string) (int, error) {
	key := cacheKey(entityLogicalName, attributeLogicalName, label)

	s.mu.RLock()
	if value, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return value, nil
	}
	s.mu.RUnlock()

	value, err := s.crm.GetOptionSetValue(ctx, entityLogicalName, attributeLogicalName, label)
	if err != nil {
		s.logger.Warn("Option set resolution failed",
			zap.String("entity", entityLogicalName),
			zap.String("attribute", attributeLogicalName),
			zap.String("label", label),
			zap.Error(err))
		return 0, err
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value, nil
}
