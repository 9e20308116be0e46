/*
Package observability turns tree navigation hooks into logs and Prometheus metrics.

	metrics, _ := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.Chain(metrics.Hooks(), observability.LogHooks(logger))
	tree, _ := dsl.Define("my_tree", declare, decisiontree.WithHooks(hooks))
*/
package observability
