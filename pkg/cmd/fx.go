package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(dataset, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
