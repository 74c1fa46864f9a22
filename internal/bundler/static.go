package bundler

// Static resources embedded in the binary. The template is passed into the
// Generator by the caller rather than read inside it, so generation stays
// pure and testable against any template text.

// ServerEntryTemplate is the skeleton of the generated .tuono/main.go.
// The two marker lines are replaced by the Generator.
const ServerEntryTemplate = `// Code generated by tuono. DO NOT EDIT.
package main

import (
	"log"

	"github.com/NayanVR/tuono/pkg/tuono"
)

func main() {
	app := tuono.New()

	// MODULE_IMPORTS

	// ROUTE_BUILDER

	if err := app.Serve(":3000"); err != nil {
		log.Fatal(err)
	}
}
`

// ClientEntryData is the browser entry shim, written verbatim to
// .tuono/client-main.tsx.
const ClientEntryData = `import 'vite/modulepreload-polyfill'
import { hydrateRoot } from 'react-dom/client'

import { App } from './app'

const root = document.getElementById('__tuono')

if (root) {
  hydrateRoot(root, <App />)
}
`

// ServerEntryData is the server-side rendering shim, written verbatim to
// .tuono/server-main.tsx.
const ServerEntryData = `import { renderToString } from 'react-dom/server'

import { App } from './app'

export function render(): string {
  return renderToString(<App />)
}
`
