package transform

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"PMTerminal/internal/domain/models"
	"PMTerminal/pkg/jsonx"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Notification types.
const (
	TypeNews          = "news"
	TypeEconomicEvent = "economic_event"
	TypeS3File        = "s3_file"
	TypePriceAlert    = "price_alert"
	TypeAlert         = "alert"
	TypeSystem        = "system"
)

const (
	DefaultFeedLimit = 50
	freshWindow      = 24 * time.Hour
)

var icons = map[string]string{
	TypeNews:          "newspaper",
	TypeEconomicEvent: "calendar",
	TypeS3File:        "file",
	TypePriceAlert:    "bell",
	TypeAlert:         "alert-triangle",
	TypeSystem:        "settings",
}

// feedNamespace seeds deterministic ids for items the upstream sent without one.
var feedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("pmterminal/notifications"))

// IconFor maps a notification type to its icon, defaulting to "info".
func IconFor(typ string) string {
	if icon, ok := icons[typ]; ok {
		return icon
	}
	return "info"
}

// FeedSources holds the three upstream documents merged into one feed. A
// source that failed is passed as an empty result.
type FeedSources struct {
	Notifications gjson.Result
	News          gjson.Result
	Events        gjson.Result
}

type feedItem struct {
	at     time.Time
	ok     bool
	seq    int
	source string
	n      models.Notification
}

// NotificationFeed normalizes notifications, news and economic events into one
// list, newest first, deduplicated by id within each source and capped at
// limit. Raw
// notifications are new while unread; news and events while published within
// the last 24 hours of now.
func NotificationFeed(src FeedSources, now time.Time, limit int) []models.Notification {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	items := make([]feedItem, 0)
	for _, row := range rowsOf(jsonx.Unwrap(src.Notifications)) {
		it := rawNotification(row)
		it.source = "notifications"
		items = append(items, it)
	}
	for _, row := range rowsOf(jsonx.Unwrap(src.News)) {
		it := newsItem(row, now)
		it.source = "news"
		items = append(items, it)
	}
	for _, row := range rowsOf(jsonx.Unwrap(src.Events)) {
		it := eventItem(row, now)
		it.source = "events"
		items = append(items, it)
	}

	// ids are numbered per upstream table
	seen := make(map[string]struct{}, len(items))
	unique := items[:0]
	for i, it := range items {
		key := it.source + "|" + it.n.ID
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		it.seq = i
		unique = append(unique, it)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.at.Equal(b.at) {
			return a.at.After(b.at)
		}
		return a.seq < b.seq
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	out := make([]models.Notification, len(unique))
	for i, it := range unique {
		out[i] = it.n
	}
	return out
}

func rawNotification(row gjson.Result) feedItem {
	typ := jsonx.StringOr(jsonx.First(row, "type", "notification_type"), TypeSystem)
	meta := objectOf(jsonx.First(row, "metadata", "meta", "data"))

	title := jsonx.StringOr(jsonx.First(row, "title", "subject"), jsonx.Placeholder)
	if typ == TypeS3File {
		institute := jsonx.StringOr(jsonx.First(row, "institute", "metadata.institute", "meta.institute"), jsonx.Placeholder)
		title = fmt.Sprintf("New Research File from %s", institute)
		meta["institute"] = institute
	}

	read := jsonx.BoolOr(jsonx.First(row, "read", "is_read", "isRead", "seen"), false)
	it := newItem(row, typ, title,
		jsonx.StringOr(jsonx.First(row, "description", "message", "body", "content"), ""),
		jsonx.First(row, "createdAt", "created_at", "date", "timestamp"),
		meta)
	it.n.IsNew = !read
	return it
}

func newsItem(row gjson.Result, now time.Time) feedItem {
	meta := map[string]interface{}{}
	copyString(meta, "url", jsonx.First(row, "url", "link"))
	copyString(meta, "source", jsonx.First(row, "source", "publisher"))
	copyString(meta, "symbol", jsonx.First(row, "symbol", "ticker"))

	it := newItem(row, TypeNews,
		jsonx.StringOr(jsonx.First(row, "title", "headline"), jsonx.Placeholder),
		jsonx.StringOr(jsonx.First(row, "description", "summary", "body"), ""),
		jsonx.First(row, "publishedAt", "published_at", "createdAt", "created_at", "date", "datetime"),
		meta)
	it.n.IsNew = fresh(it, now)
	return it
}

func eventItem(row gjson.Result, now time.Time) feedItem {
	meta := map[string]interface{}{}
	copyString(meta, "country", jsonx.First(row, "country", "currency"))
	copyString(meta, "impact", jsonx.First(row, "impact", "importance"))
	copyString(meta, "actual", jsonx.First(row, "actual"))
	copyString(meta, "forecast", jsonx.First(row, "forecast", "consensus"))
	copyString(meta, "previous", jsonx.First(row, "previous"))

	title := jsonx.StringOr(jsonx.First(row, "title", "event", "name"), jsonx.Placeholder)
	desc := jsonx.StringOr(jsonx.First(row, "description"), "")
	if desc == "" {
		if c, ok := meta["country"].(string); ok {
			desc = c
		}
	}

	it := newItem(row, TypeEconomicEvent, title, desc,
		jsonx.First(row, "date", "datetime", "time", "createdAt"),
		meta)
	it.n.IsNew = fresh(it, now)
	return it
}

func newItem(row gjson.Result, typ, title, desc string, created gjson.Result, meta map[string]interface{}) feedItem {
	at, ok := timeOf(created)
	createdAt := ""
	if ok {
		createdAt = at.Format(time.RFC3339)
	}

	id := jsonx.StringOr(jsonx.First(row, "id", "_id", "uuid"), "")
	if id == "" {
		id = uuid.NewSHA1(feedNamespace, []byte(typ+"|"+title+"|"+created.Raw)).String()
	}

	return feedItem{at: at, ok: ok, n: models.Notification{
		ID:          id,
		Type:        typ,
		Title:       title,
		Description: desc,
		CreatedAt:   createdAt,
		Icon:        IconFor(typ),
		Metadata:    meta,
	}}
}

func fresh(it feedItem, now time.Time) bool {
	if !it.ok {
		return false
	}
	age := now.Sub(it.at)
	return age >= 0 && age < freshWindow
}

func objectOf(r gjson.Result) map[string]interface{} {
	out := map[string]interface{}{}
	if r.IsObject() {
		_ = json.Unmarshal([]byte(r.Raw), &out)
	}
	return out
}

func copyString(dst map[string]interface{}, key string, r gjson.Result) {
	if s := jsonx.StringOr(r, ""); s != "" {
		dst[key] = s
	}
}
