// Package telemetry implements the wearable API client.
//
// The client fetches paginated daily series (sleep, readiness, activity,
// SpO2, heart rate) over bearer-authenticated HTTPS and normalises the
// drifting upstream schemas into domain.Record values. Field names vary
// across API revisions, so every target field is resolved through an
// ordered alias table; nested payloads are reduced to scalars by a fixed
// set of heuristics (see resolveScalar).
//
// The client performs no retries. Transport failures surface as
// *TransportError carrying the kind and date window so the orchestrator
// can isolate the failed kind.
package telemetry
