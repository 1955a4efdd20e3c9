package validators

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

const (
	FieldClientID  = "client_id"
	FieldEnabled   = "enabled"
	FieldUserID    = "user_id"
	FieldNamespace = "namespace"

	FieldEntityType = "entity_type"
	FieldEntityKey  = "entity_key"
)

// Namespace is validated as the name of a remote snapshot document. It
// becomes part of an object key or a primary key, so it is restricted to a
// conservative character set.
type Namespace string

var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

type SyncValidator struct {
}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.SyncEnableRequest:
		return v.validateEnableRequest(value, fields...)
	case *models.SyncEnableRequest:
		return v.validateEnableRequest(*value, fields...)

	case models.OutboxDeleteRequest:
		return v.validateOutboxDelete(value, fields...)
	case *models.OutboxDeleteRequest:
		return v.validateOutboxDelete(*value, fields...)

	case models.SyncState:
		return v.validateSyncState(value, fields...)

	case Namespace:
		if !namespacePattern.MatchString(string(value)) {
			return fmt.Errorf("%w: %q", ErrInvalidNamespace, value)
		}
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateSyncRequest checks the request envelope only. Invalid records and
// deletes inside the changes are skipped by the merge instead.
func (v *SyncValidator) validateSyncRequest(_ context.Context, req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID}
	}

	for _, field := range fields {
		switch field {
		case FieldClientID:
			if strings.TrimSpace(req.ClientID) == "" {
				return ErrEmptyClientID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SyncValidator) validateEnableRequest(req models.SyncEnableRequest, fields ...string) error {
	for _, field := range fields {
		if field != FieldEnabled {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	if req.Enabled == nil {
		return ErrEnabledRequired
	}
	return nil
}

func (v *SyncValidator) validateSyncState(state models.SyncState, fields ...string) error {
	for _, field := range fields {
		if field != FieldUserID {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	if state.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// validateOutboxDelete accepts the entity type in any letter case.
func (v *SyncValidator) validateOutboxDelete(req models.OutboxDeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityType, FieldEntityKey}
	}

	entityType := models.EntityType(strings.ToUpper(string(req.EntityType)))
	for _, field := range fields {
		switch field {
		case FieldEntityType:
			if entityType != models.EntityList && entityType != models.EntityListItem {
				return fmt.Errorf("%w: %q", ErrInvalidEntityType, req.EntityType)
			}
		case FieldEntityKey:
			if !validEntityKey(entityType, req.EntityKey) {
				return fmt.Errorf("%w: %q", ErrInvalidEntityKey, req.EntityKey)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validEntityKey(entityType models.EntityType, key string) bool {
	switch entityType {
	case models.EntityList:
		id, err := strconv.ParseInt(key, 10, 64)
		return err == nil && id > 0
	case models.EntityListItem:
		_, _, err := models.ParseListItemKey(key)
		return err == nil
	default:
		return key != ""
	}
}
