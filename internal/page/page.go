package page

// Page is a parsed source file ready to be placed into a template.
type Page struct {
	Title string // Page title (first heading, or <title> for HTML sources)
	Body  string // Rendered HTML body, without <html>/<head>
}

// Output describes one file written by a site build.
type Output struct {
	Source    string // Path relative to the content root
	Dest      string // Path relative to the public root
	Title     string
	Bytes     int64
	Hash      string // SHA-256 of the written bytes
	Unchanged bool   // Destination already held identical bytes
}
