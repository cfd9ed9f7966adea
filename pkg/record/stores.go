package record

import (
	"kaju/entities"
	"kaju/pkg/kvstore"
)

// Keys names the storage keys. They are injected (not package globals) so
// tests can run against fresh namespaces, but the defaults must stay stable
// across versions for data continuity.
type Keys struct {
	Activities    string
	Trees         string
	Growth        string
	Reminders     string
	Notifications string
	KBDocuments   string
	Theme         string
	SheetsConfig  string
}

func DefaultKeys() Keys {
	return Keys{
		Activities:    "activities",
		Trees:         "trees",
		Growth:        "growth_records",
		Reminders:     "reminders",
		Notifications: "notifications",
		KBDocuments:   "kb_documents",
		Theme:         "theme",
		SheetsConfig:  "sheets_sync_config",
	}
}

// Stores bundles one collection per record type over a shared substrate.
type Stores struct {
	Activities    *Collection[entities.ActivityRecord]
	Trees         *Collection[entities.Tree]
	Growth        *Collection[entities.GrowthRecord]
	Reminders     *Collection[entities.Reminder]
	Notifications *Collection[entities.Notification]
	KBDocuments   *Collection[entities.KBDocument]

	Keys Keys
	KV   kvstore.Store
}

func NewStores(kv kvstore.Store, keys Keys) *Stores {
	return &Stores{
		Activities: NewCollection(kv, keys.Activities,
			func(a entities.ActivityRecord) string { return a.ID },
			func(a, b entities.ActivityRecord) bool { return a.Date.After(b.Date) }),
		Trees: NewCollection(kv, keys.Trees,
			func(t entities.Tree) string { return t.ID },
			func(a, b entities.Tree) bool { return a.Code < b.Code }),
		Growth: NewCollection(kv, keys.Growth,
			func(g entities.GrowthRecord) string { return g.ID },
			func(a, b entities.GrowthRecord) bool { return a.Date.After(b.Date) }),
		Reminders: NewCollection(kv, keys.Reminders,
			func(r entities.Reminder) string { return string(r.Type) },
			func(a, b entities.Reminder) bool { return a.Type < b.Type }),
		Notifications: NewCollection(kv, keys.Notifications,
			func(n entities.Notification) string { return n.ID },
			func(a, b entities.Notification) bool { return a.CreatedAt.After(b.CreatedAt) }),
		KBDocuments: NewCollection(kv, keys.KBDocuments,
			func(d entities.KBDocument) string { return d.ID },
			func(a, b entities.KBDocument) bool { return a.CreatedAt.After(b.CreatedAt) }),
		Keys: keys,
		KV:   kv,
	}
}

// FindTreeByCode resolves the weak tree_code reference. Duplicate codes are
// possible (uniqueness is not enforced); the first match in code order wins.
func (s *Stores) FindTreeByCode(code string) (entities.Tree, bool) {
	for _, t := range s.Trees.GetAll() {
		if t.Code == code {
			return t, true
		}
	}
	return entities.Tree{}, false
}
