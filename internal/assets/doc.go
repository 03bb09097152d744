// Package assets loads page templates and stylesheets, either embedded in
// the binary or from a directory on disk. The embedded assets ship a
// default page template (templates/page.html) and a documentation
// stylesheet (styles/docs.css); a FilesystemLoader with the same layout
// overrides them.
package assets
