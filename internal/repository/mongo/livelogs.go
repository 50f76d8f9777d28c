package mongo

import (
	"context"
	"fmt"

	"github.com/nuribostan/abTestYazilim/internal/domain"
)

// AppendLiveLog inserts one ephemeral audit entry. The TTL index on
// expiresAt removes it after its 24-hour window.
func (r *Repository) AppendLiveLog(ctx context.Context, entry *domain.LiveLog) error {
	if _, err := r.collection(colLiveLogs).InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert live log: %w", err)
	}
	return nil
}
