// Package zapsink lets lazily built messages be written by zap.
//
//	log := interp.New(zapsink.New(zapLogger))
//	log.Info(func(h *interp.Handler) {
//		h.Literal("user ")
//		h.Append("name", name)
//	})
//
// writes "user alice" with a name field and the {OriginalFormat} field.
package zapsink
