// Package sync implements the stock and price synchronization pipeline.
//
// One run is a fixed linear sequence:
//  1. Fetch the seller catalog (paginated product list) as a set of offer ids.
//  2. Download and parse the supplier feed.
//  3. Reconcile stocks and submit them in batches.
//  4. Reconcile prices and submit them in batches.
//
// Execution is strictly sequential: each batch submission blocks on its
// response before the next one is sent, and the first error of any step
// aborts the whole run. There is no retry inside the pipeline; a transient
// failure is reported and the run exits, leaving retry policy to whatever
// schedules the tool.
//
// # Failure Reporting
//
// Every failure is wrapped as *Error carrying the pipeline stage and a
// category (transient, validation, unexpected). The CLI maps categories to
// distinct exit codes so operators can tell a flaky network from a broken
// feed without reading logs.
//
// # Components
//
//   - Service: drives the pipeline against a marketplace.Client and a
//     supplier.Source.
//   - Summary: aggregate counts of one run, logged on completion.
package sync
