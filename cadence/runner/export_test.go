package runner

// Exported aliases for testing internal functions from the
// runner_test package.

// PlanBatchesForTest exposes planBatches.
var PlanBatchesForTest = planBatches
