// Package ui holds the Bootstrap page chrome of the preview server.
package ui

import (
	"fmt"
	"html/template"
)

const (
	bootstrapCSS          = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css"
	bootstrapCSSIntegrity = "sha384-T3c6CoIi6uLrA9TneNEoa7RxnatzjcDSCmG1MXxSR1GAsXEV/Dwwykc2MPK8M2HN"
	bootstrapIconsCSS     = "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css"
	bootstrapJS           = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/js/bootstrap.bundle.min.js"
	bootstrapJSIntegrity  = "sha384-BBtl+eGJRgqQAUMxJ7pMwbEyER4l1g+O15P+16Ep7Q9Q+zqX6gSbd85u4mG4QzX+"
)

// Bootstrap 5 dropped btn-default, which the link buttons still emit
const styles = `
        body { background: #f5f6fa; }
        .main-container {
            background: white;
            border-radius: 15px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.1);
            padding: 2rem;
            margin: 2rem 0;
        }
        .btn-default {
            color: #333;
            background-color: #fff;
            border-color: #ccc;
        }
        .gallery-source { font-size: 0.8rem; }
`

// Header generates the HTML header with Bootstrap CDN
func Header(title string) template.HTML {
	return template.HTML(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link href="%s" rel="stylesheet" integrity="%s" crossorigin="anonymous">
    <link rel="stylesheet" href="%s">
    <style>%s</style>
</head>
<body>`, template.HTMLEscapeString(title), bootstrapCSS, bootstrapCSSIntegrity, bootstrapIconsCSS, styles))
}

// Footer generates the HTML footer with scripts
func Footer() template.HTML {
	return template.HTML(fmt.Sprintf(`
    <script src="%s" integrity="%s" crossorigin="anonymous"></script>
</body>
</html>`, bootstrapJS, bootstrapJSIntegrity))
}

// ContainerStart returns the opening tags for the main container
func ContainerStart() template.HTML {
	return `<div class="container">
    <div class="main-container">`
}

// ContainerEnd returns the closing tags for the main container
func ContainerEnd() template.HTML {
	return `    </div>
</div>`
}
