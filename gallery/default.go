package gallery

// defaultGallery is served when no gallery file is configured
const defaultGallery = `
title: Buttons
entries:
  - kind: button
    name: Save
    text: Save
    attributes:
      class: btn btn-primary
      type: submit
    icon:
      class: bi bi-save
  - kind: button
    name: Refresh
    text: Refresh
    onclick: /orders
    attributes:
      class: btn btn-outline-secondary
    icon:
      class: bi bi-arrow-clockwise
  - kind: button
    name: Delete
    text: Delete
    disabled: true
    attributes:
      class: btn btn-danger
    icon:
      class: bi bi-trash
  - kind: link
    name: Back
    text: Back
    uri: /orders
    icon:
      class: bi bi-arrow-left
  - kind: link
    name: Export
    text: Export
    uri: /orders/export
    attributes:
      class: btn btn-success
    icon:
      class: bi bi-download
  - kind: link
    name: Archive
    text: Archive
    uri: /orders/archive
    disabled: true
    icon:
      class: bi bi-archive
`

// Default returns the built-in gallery
func Default() *Gallery {
	g, err := Parse([]byte(defaultGallery))
	if err != nil {
		panic(err)
	}
	return g
}
