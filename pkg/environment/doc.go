// Package environment carries the deployment environment (development,
// staging, production) through configuration and context.Context.
//
// Parse normalizes configured names and their short aliases:
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.IsProduction(ctx) {
//		// ...
//	}
//
// LoggerExtractor plugs the value into pkg/logger as an "env" attribute:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values read as the empty Environment; nothing here returns errors.
package environment
