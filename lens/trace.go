package lens

import (
	"log/slog"

	lenserrors "github.com/authcorp/optics/errors"
)

// Traced decorates l so each View and Set is logged under name. Successful
// calls log at debug level; failures log at warn level with the error code.
// A nil logger uses slog.Default().
func Traced[S, A any](l Lens[S, A], logger *slog.Logger, name string) Lens[S, A] {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("lens", name)
	return Lens[S, A]{
		view: func(s S) (A, error) {
			a, err := l.view(s)
			logCall(logger, lenserrors.OpView, err)
			return a, err
		},
		set: func(s S, a A) (S, error) {
			updated, err := l.set(s, a)
			logCall(logger, lenserrors.OpSet, err)
			return updated, err
		},
	}
}

func logCall(logger *slog.Logger, op lenserrors.Op, err error) {
	if err != nil {
		logger.Warn("lens call failed",
			"op", string(op),
			"code", string(lenserrors.GetCode(err)),
			"error", err.Error(),
		)
		return
	}
	logger.Debug("lens call", "op", string(op))
}
