// Package worker decodes many FHIR documents in parallel.
//
// BatchDecoder decodes a slice of documents and returns the results in
// input order. Pool is a long-lived set of workers fed through Submit:
//
//	dec, _ := fhirmodels.NewDecoder()
//	pool := worker.NewPool(dec, 4)
//
//	for i, doc := range docs {
//	    pool.Submit(worker.Job{ID: names[i], Index: i, Document: doc})
//	}
//	batch := pool.CloseAndWait()
//	for _, r := range batch.Results {
//	    if r.Error != nil {
//	        // r.Error is a *codec.DecodeError or a context error
//	    }
//	}
//
// The package depends only on codec and r4, so the root package can use it
// without an import cycle.
package worker
