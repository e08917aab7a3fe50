// Package workflow drives the episode production state machine.
//
// A run walks HumanGate -> Plan -> Retrieve -> Draft -> Validate and then
// routes to Deliver, Revise or Escalate. Revision loops back to Draft with
// reviewer guidance; delivery advances to the next episode's Retrieve step.
// Each episode gets at most MaxRetries automatic revision cycles before the
// run escalates for human review and halts with partial results.
//
// States form a closed tag set and each step is a method that mutates the
// single State record and returns the next tag. Execution is strictly
// sequential: one episode is fully resolved before the next begins. The
// orchestrator owns the State exclusively for the run's duration and the
// retrieval index is read-only after its build.
package workflow
