package logger

// FormatChainExported exposes formatChain for tests.
func FormatChainExported(err error) string {
	return formatChain(err)
}
