package redis

import "time"

// DefaultConnectTimeout bounds the initial ping in NewRedis.
const DefaultConnectTimeout = 5 * time.Second
