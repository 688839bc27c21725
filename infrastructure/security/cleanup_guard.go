package security

import (
	"context"
	"strings"

	"demoqa_automation/domain/entities"
	"demoqa_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// CleanupGuard keeps the suite from deleting rows it did not create.
// DemoQA ships with sample rows and is shared by everyone running against it.
type CleanupGuard struct {
	logger  *logrus.Logger
	domains []string
}

// NewCleanupGuard - creates a guard allowing deletion of rows whose email
// belongs to one of domains; entities.EmailProvider when none is given
func NewCleanupGuard(logger *logrus.Logger, domains ...string) *CleanupGuard {
	if len(domains) == 0 {
		domains = []string{entities.EmailProvider}
	}
	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "@"))
		if d != "" {
			normalized = append(normalized, d)
		}
	}
	return &CleanupGuard{
		logger:  logger,
		domains: normalized,
	}
}

// AllowDelete - reports whether the row identified by email may be deleted
func (g *CleanupGuard) AllowDelete(ctx context.Context, email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		g.refuse(email, "not an email address")
		return false
	}

	for _, d := range g.domains {
		if domain == d {
			return true
		}
	}

	g.refuse(email, "domain is not owned by the suite")
	return false
}

// Owned - returns the emails among candidates that may be deleted, in order
func (g *CleanupGuard) Owned(ctx context.Context, candidates []string) []string {
	var owned []string
	for _, email := range candidates {
		if g.AllowDelete(ctx, email) {
			owned = append(owned, email)
		}
	}
	return owned
}

func (g *CleanupGuard) refuse(email, reason string) {
	if g.logger == nil {
		return
	}
	g.logger.WithFields(logrus.Fields{
		"email":  email,
		"reason": reason,
	}).Warn("Refusing to delete web table record")
}

func emailDomain(email string) (string, bool) {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return strings.ToLower(email[at+1:]), true
}

// Ensure CleanupGuard implements CleanupGuard interface
var _ interfaces.CleanupGuard = (*CleanupGuard)(nil)
