package rdx

import (
	"log"
	"matchify/globals"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// RdxSetNX acquires a lock-style key; returns true when acquired.
func RdxSetNX(key, value string, ttl time.Duration) (bool, error) {
	return Conn.SetNX(globals.Ctx, key, value, ttl).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}

// IncrUnread bumps the unread badge counter for a user's chat.
func IncrUnread(userID, chatID string) {
	if err := Conn.Incr(globals.Ctx, "unread:"+userID+":"+chatID).Err(); err != nil {
		log.Printf("IncrUnread: %v", err)
	}
}

// ClearUnread resets the unread badge counter when a chat is opened.
func ClearUnread(userID, chatID string) {
	if err := Conn.Del(globals.Ctx, "unread:"+userID+":"+chatID).Err(); err != nil {
		log.Printf("ClearUnread: %v", err)
	}
}

// UnreadCounts returns per-chat unread counters for a user.
func UnreadCounts(userID string) map[string]int64 {
	counts := make(map[string]int64)
	keys, err := Conn.Keys(globals.Ctx, "unread:"+userID+":*").Result()
	if err != nil {
		log.Println("UnreadCounts scan error:", err)
		return counts
	}
	for _, key := range keys {
		n, err := Conn.Get(globals.Ctx, key).Int64()
		if err != nil {
			continue
		}
		// key layout: unread:<userid>:<chatid>
		chatID := key[len("unread:"+userID+":"):]
		counts[chatID] = n
	}
	return counts
}
