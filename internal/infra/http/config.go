package server

import "time"

const defaultWriteTimeout = 15 * time.Second

type Config struct {
	Port              string
	ShutdownTimeout   time.Duration
	WriteTimeout      time.Duration
	disableMiddleware bool
}

// NewConfig sizes the write deadline so that a request making two sequential
// upstream calls, each bounded by upstreamTimeout, still gets its error response out.
func NewConfig(
	port string,
	upstreamTimeout time.Duration,
	disableMiddleware bool,
) Config {
	writeTimeout := defaultWriteTimeout
	if derived := 2*upstreamTimeout + 5*time.Second; derived > writeTimeout {
		writeTimeout = derived
	}

	return Config{
		Port:              port,
		ShutdownTimeout:   10 * time.Second,
		WriteTimeout:      writeTimeout,
		disableMiddleware: disableMiddleware,
	}
}
