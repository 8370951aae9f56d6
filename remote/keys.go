package remote

import "fmt"

// Key identifies one cached value. Sub distinguishes listings from details
// and the individual analytics aggregates, so invalidation can target a
// single record or a whole listing.
type Key struct {
	Entity string
	Sub    string
	ID     string
}

func (k Key) String() string {
	if k.ID == "" {
		return fmt.Sprintf("%s:%s", k.Entity, k.Sub)
	}
	return fmt.Sprintf("%s:%s:%s", k.Entity, k.Sub, k.ID)
}

func ListKey(entity string) Key {
	return Key{Entity: entity, Sub: "list"}
}

func DetailKey(entity, id string) Key {
	return Key{Entity: entity, Sub: "detail", ID: id}
}

func AnalyticsKey(sub string) Key {
	return Key{Entity: "analytics", Sub: sub}
}

// recordID in a dependency template expands to the id of the mutated record.
const recordID = "{id}"

// mutationDeps declares, per mutation operation, exactly which cache keys
// become stale when the operation succeeds. Keeping the whole graph in one
// table makes invalidation checkable without reading any call site.
var mutationDeps = map[string][]Key{
	"employee.create": {ListKey("employees")},
	"employee.update": {ListKey("employees"), DetailKey("employees", recordID)},
	"employee.delete": {ListKey("employees"), DetailKey("employees", recordID)},
	"salary.pay": {
		ListKey("employees"),
		DetailKey("employees", recordID),
		ListKey("payslips"),
		{Entity: "payslips", Sub: "employee", ID: recordID},
	},
	"attendance.add": {ListKey("attendance")},
}

// DependentKeys expands the declared templates for op with the mutated
// record's id. Templates needing an id are skipped when none is known
// (create operations only learn the id from the response).
func DependentKeys(op, id string) []Key {
	templates, ok := mutationDeps[op]
	if !ok {
		return nil
	}
	keys := make([]Key, 0, len(templates))
	for _, t := range templates {
		if t.ID == recordID {
			if id == "" {
				continue
			}
			t.ID = id
		}
		keys = append(keys, t)
	}
	return keys
}
