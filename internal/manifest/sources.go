package manifest

import (
	"github.com/shadow-js/create-shadow-app/internal/models"
)

// GitIgnore is the ignore file written into every project.
const GitIgnore = `dist
node_modules
.env
.env.local
.env.development.local
.env.test.local
.env.production.local
*.log
.DS_Store
.vite
`

const routerEntry = `import { render } from "@shadow-js/core";
import { Route, Router } from "@shadow-js/router";
import App from "./App";
import "./style.css";

const root = document.getElementById("root");
if (!root) {
  throw new Error("Root element not found");
}

render(
  <Router>
    <Route component={App} path="/" />
  </Router>,
  root
);
`

// EntryPath is the entry point module for lang, relative to the project.
func EntryPath(lang models.Language) string {
	return "src/main." + lang.SourceExt()
}

// RouterEntry returns the entry point that mounts App behind the router.
// The narrowing on root keeps the same source valid for both languages.
func RouterEntry(lang models.Language) []byte {
	return []byte(routerEntry)
}
