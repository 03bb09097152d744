// Package md2site converts Markdown documentation to static HTML pages.
//
// # Quick Start
//
// Create a service, convert a document, and write the page:
//
//	svc := md2site.New()
//
//	page, err := svc.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Template: "<html><body>{{content}}</body></html>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(page), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line compression)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Template injection ({{content}} substitution, optional inline CSS)
//
// # Batch Conversion
//
// Use a Runner with a Manifest to convert a fixed set of documents into
// mirrored output paths:
//
//	runner := md2site.NewRunner(svc, md2site.FileTemplate("page.html"))
//	err := runner.Run(ctx, md2site.Manifest{
//	    Sets: []md2site.DocumentSet{{
//	        Name:      "guidelines",
//	        SourceDir: "docs/guidelines",
//	        OutputDir: "site/guidelines",
//	        Files:     []string{"naming.md", "testing.md"},
//	    }},
//	})
//
// Source files listed in the manifest that do not exist are skipped
// silently; the run continues. Any other failure aborts the remainder of
// the run. Pages written before the failure stay on disk.
//
// # Templates
//
// A template is a plain HTML file with a single {{content}} placeholder.
// FileTemplate re-reads the file on every conversion, so template edits
// take effect on the next run without rebuilding.
package md2site
