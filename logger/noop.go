package logger

// Noop discards everything. It is the GoldRush client's default
// logger, so a client with no WithLogger option stays silent.
type Noop struct {
}

var _ Logger = &Noop{}

func (n Noop) Debugf(format string, args ...any) {
}

func (n Noop) Infof(format string, args ...any) {
}

func (n Noop) Warnf(format string, args ...any) {
}

func (n Noop) Errorf(format string, args ...any) {
}
