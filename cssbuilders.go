package mdsnap

import "fmt"

// Element documents use a transparent body background so the crop pass can
// find the visible bounding box, and inline-block sizing so the content
// does not stretch to the full viewport width.

// tableCSS styles a table snapshot: rounded card, colored header row,
// zebra-striped body. Font sizes are tuned for the 4K viewport.
const tableCSS = `
body {
  font-family: 'Segoe UI', Helvetica, Arial, sans-serif;
  background-color: transparent;
  margin: 0; padding: 0;
  display: inline-block;
  width: fit-content;
}
.table-container {
  padding: 40px;
  display: inline-block;
}
table {
  border-collapse: collapse;
  min-width: 1800px;
  box-shadow: 0 10px 30px rgba(0,0,0,0.15);
  border-radius: 12px;
  overflow: hidden;
  background-color: #ffffff;
}
th {
  background-color: #009879;
  color: #ffffff;
  text-align: left;
  font-weight: bolder;
  padding: 20px 30px;
  font-size: 2.4em;
}
td {
  padding: 18px 30px;
  border-bottom: 1px solid #dddddd;
  color: #333;
  font-size: 2.2em;
  font-weight: bold;
}
tr:nth-of-type(even) { background-color: #f3f3f3; }
tr:last-of-type td { border-bottom: 2px solid #009879; }
`

// codeCSS styles a code snapshot as a dark editor window with a title bar.
const codeCSS = `
body {
  font-family: 'Consolas', 'Monaco', monospace;
  margin: 0; padding: 0;
  display: inline-block;
  background-color: transparent;
  width: fit-content;
}
.window {
  margin: 40px;
  background-color: #1e1e1e;
  border-radius: 16px;
  box-shadow: 0 30px 60px rgba(0,0,0,0.5);
  min-width: 3000px;
  overflow: hidden;
}
.title-bar {
  background-color: #252526;
  padding: 15px 20px;
  display: flex;
  gap: 12px;
}
.dot { width: 16px; height: 16px; border-radius: 50%; }
.red { background-color: #ff5f56; }
.yellow { background-color: #ffbd2e; }
.green { background-color: #27c93f; }
.code-content {
  padding: 30px;
  color: #d4d4d4;
  font-size: 28px;
  line-height: 1.6;
}
pre { margin: 0; white-space: pre-wrap; padding: 40px; }
`

// elementDocTemplate wraps an element and its CSS in a standalone HTML5
// document for the screenshot page.
const elementDocTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><style>%s</style></head>
<body>%s</body>
</html>`

// buildTableDocument wraps a serialized <table> element in a standalone
// styled document.
func buildTableDocument(tableHTML string) string {
	content := fmt.Sprintf(`<div class="table-container">%s</div>`, tableHTML)
	return fmt.Sprintf(elementDocTemplate, tableCSS, content)
}

// buildCodeDocument wraps a serialized <pre> block in a standalone editor
// window document.
func buildCodeDocument(preHTML string) string {
	content := fmt.Sprintf(`<div class="window">
  <div class="title-bar">
    <div class="dot red"></div>
    <div class="dot yellow"></div>
    <div class="dot green"></div>
  </div>
  <div class="code-content">%s</div>
</div>`, preHTML)
	return fmt.Sprintf(elementDocTemplate, codeCSS, content)
}
