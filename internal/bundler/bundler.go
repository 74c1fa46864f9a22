package bundler

// Bundle runs the full pipeline against the project at basePath:
// collect routes, generate the server entry, ensure the output directory,
// write the outputs. The first fatal error aborts the run; nothing is
// retried and no partial success is reported as success. The route table
// and generated text are fully computed before any file is touched.
func Bundle(basePath string, traverser Traverser) error {
	table, err := NewCollector(basePath, traverser).Collect()
	if err != nil {
		return err
	}

	generated := NewGenerator(table, ServerEntryTemplate).Generate()

	boot := NewBootstrapper(basePath)
	if err := boot.EnsureOutputDir(); err != nil {
		return err
	}
	return boot.WriteOutputs(generated, ClientEntryData, ServerEntryData)
}
