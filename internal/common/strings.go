package common

// UnknownStr is the fallback name for enum values without a known name.
const UnknownStr = "unknown"
