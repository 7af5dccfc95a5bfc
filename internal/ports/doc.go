// Package ports defines the interfaces that connect the pipeline to
// infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the pipeline needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [MessageSource]: supplies the input message for a pipeline pass
//   - [ResultSink]: receives the transformed output
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces;
// infrastructure adapters (internal/adapters) implement them. This keeps the
// pipeline testable with in-memory fakes and the dependency direction clear.
package ports
