package importers

import (
	"fmt"
	"strings"

	"github.com/Pleasurecruise/cdk/internal/content"
)

// User-facing messages. The form UI surfaces these verbatim.
const (
	msgNoContent      = "请输入要导入的内容"
	msgNoValidContent = "未找到有效的内容"
	msgAllDuplicates  = "所有内容都重复，共跳过 %d 个重复项"

	skippedPrefix        = "，已跳过 "
	skippedSeparator     = "，"
	fmtSelfDuplicates    = "%d 个重复内容"
	fmtExistingDuplicate = "%d 个已存在内容"
)

// Result describes a successful bulk import.
type Result struct {
	// Items is the merged collection: the caller's current items followed by
	// the newly imported ones, in encounter order.
	Items []string `json:"items"`

	// Imported is the number of items appended to the collection.
	Imported int `json:"imported"`

	// SkippedInfo is a human-readable clause describing skipped duplicates,
	// meant to be appended to the success message. Empty when nothing was
	// skipped or when duplicates were allowed.
	SkippedInfo string `json:"skipped_info,omitempty"`
}

// Error is an import failure with a message meant for the user.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Reconcile parses raw pasted text and merges the resulting items into the
// caller's current collection under the given duplicate policy.
//
// With allowDuplicates, every parsed item is appended unconditionally.
// Otherwise the parsed batch is first reduced to its distinct values
// (first occurrence wins), then filtered against the current collection;
// if nothing survives, Reconcile fails rather than reporting an empty import.
//
// current is never modified; the merged collection is a fresh slice.
func Reconcile(raw string, current []string, allowDuplicates bool) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &Error{Message: msgNoContent}
	}

	parsed := content.Parse(raw)
	if len(parsed) == 0 {
		return nil, &Error{Message: msgNoValidContent}
	}

	if allowDuplicates {
		return &Result{
			Items:    merge(current, parsed),
			Imported: len(parsed),
		}, nil
	}

	// Stage one: collapse duplicates within the pasted batch itself,
	// preserving first-occurrence order.
	seen := make(map[string]struct{}, len(parsed))
	distinct := make([]string, 0, len(parsed))
	for _, item := range parsed {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		distinct = append(distinct, item)
	}
	selfDuplicates := len(parsed) - len(distinct)

	// Stage two: drop items the collection already holds. Membership only;
	// duplicates already inside current are the caller's business.
	existing := make(map[string]struct{}, len(current))
	for _, item := range current {
		existing[item] = struct{}{}
	}
	fresh := make([]string, 0, len(distinct))
	for _, item := range distinct {
		if _, ok := existing[item]; !ok {
			fresh = append(fresh, item)
		}
	}
	existingDuplicates := len(distinct) - len(fresh)

	if len(fresh) == 0 {
		return nil, &Error{
			Message: fmt.Sprintf(msgAllDuplicates, selfDuplicates+existingDuplicates),
		}
	}

	return &Result{
		Items:       merge(current, fresh),
		Imported:    len(fresh),
		SkippedInfo: skippedInfo(selfDuplicates, existingDuplicates),
	}, nil
}

// ReconcileDefault is the legacy entry point: duplicates are skipped.
func ReconcileDefault(raw string, current []string) (*Result, error) {
	return Reconcile(raw, current, false)
}

func merge(current, imported []string) []string {
	merged := make([]string, 0, len(current)+len(imported))
	merged = append(merged, current...)
	merged = append(merged, imported...)
	return merged
}

// skippedInfo renders the non-zero skip counts as a suffix for the success
// message, e.g. "，已跳过 2 个重复内容，1 个已存在内容".
func skippedInfo(selfDuplicates, existingDuplicates int) string {
	parts := make([]string, 0, 2)
	if selfDuplicates > 0 {
		parts = append(parts, fmt.Sprintf(fmtSelfDuplicates, selfDuplicates))
	}
	if existingDuplicates > 0 {
		parts = append(parts, fmt.Sprintf(fmtExistingDuplicate, existingDuplicates))
	}
	if len(parts) == 0 {
		return ""
	}
	return skippedPrefix + strings.Join(parts, skippedSeparator)
}
