package templates

// Built-in templates used when a key is absent from configuration.
const (
	DefaultPrologue = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>{title}</title>\n</head>\n<body>\n"
	DefaultEpilogue = "\n</body>\n</html>"

	DefaultImage          = `<img src="{src}" alt="{caption}">`
	DefaultLink           = `<a href="{src}">{caption}</a>`
	DefaultLatex          = `<p class="latex">{text}</p>`
	DefaultCode           = `<pre><code class="language-{lang}">{text}</code></pre>`
	DefaultCodeInline     = `<code>{text}</code>`
	DefaultBlockquote     = `<blockquote>{text}</blockquote>`
	DefaultHorizontalLine = `<hr>`
	DefaultParagraph      = `<p>{text}</p>`
	DefaultBold           = `<b>{text}</b>`
	DefaultItalic         = `<i>{text}</i>`
	DefaultItalicBold     = `<b><i>{text}</i></b>`
	DefaultStrikethrough  = `<s>{text}</s>`
	DefaultHeader         = `<h{level}>{text}</h{level}>`
	DefaultError          = `<div class="parse-error">{text}</div>`
	DefaultList           = "<ul>\n{text}</ul>"
	DefaultListItem       = "\t<li>{text}</li>\n"
)
