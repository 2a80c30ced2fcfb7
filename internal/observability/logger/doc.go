// Package logger envuelve zap para postwall.
//
// El proceso llama Init una vez al arrancar. Los handlers obtienen un logger
// con scope de request vía From(ctx); el middleware de logging guarda uno con
// request id, método y path, así los services solo agregan su layer y op:
//
//	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("Posts.Create"))
//	log.Info("post created", logger.PostID(p.ID))
//
// Los helpers de campos mantienen los nombres de keys iguales en todos los paquetes.
package logger
