package preview

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// DefaultSanitizer returns the policy applied to fallback markup: the
// bluemonday UGC policy, which keeps inline formatting and links but strips
// scripts, styles and event handlers.
func DefaultSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.UGCPolicy()
	})
	return markupPolicy
}
