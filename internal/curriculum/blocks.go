package curriculum

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Block label fragments used for lookup. Matching is case-insensitive
// substring search so renamed blocks in a re-scraped plan keep resolving
// without code changes.
const (
	labelModules    = "модули"
	labelPracticum  = "практика"
	labelFinal      = "гиа"
	labelMinor      = "майнор"
	labelFacultativ = "факультатив"
)

// findBlock returns the first block whose block_name contains the given
// fragment (case-insensitive). The second return is false when no block
// matches; callers treat that as an empty result, not an error.
func findBlock(blocks gjson.Result, fragment string) (gjson.Result, bool) {
	fragment = strings.ToLower(fragment)
	var found gjson.Result
	var ok bool
	blocks.ForEach(func(_, block gjson.Result) bool {
		name := strings.ToLower(block.Get("block_name").String())
		if strings.Contains(name, fragment) {
			found = block
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// intField reads the first present numeric field from the given names.
// Used for the credits/total_credits and hours/total_hours drift between
// taught-module and practicum entries.
func intField(entry gjson.Result, names ...string) int {
	for _, name := range names {
		if v := entry.Get(name); v.Exists() {
			return int(v.Int())
		}
	}
	return 0
}

// titleField reads the first non-empty title-like field. The AI schema uses
// "title", the AI Product schema uses "name", practicum modules carry only
// "module_name".
func titleField(entry gjson.Result, names ...string) string {
	for _, name := range names {
		if v := entry.Get(name).String(); v != "" {
			return v
		}
	}
	return ""
}

// containsFold reports whether s contains substr ignoring case. Both sides
// are lowered with strings.ToLower, which folds Cyrillic correctly.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
