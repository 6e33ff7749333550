// Package skills classifies free text into recognized language and
// technology tags.
package skills

// Static lexicon partitions. These are process-wide read-only data: no
// write path exists at runtime.

var programmingLanguages = stringSet(
	"python", "javascript", "java", "c++", "c#", "c", "go", "rust", "swift",
	"kotlin", "scala", "ruby", "php", "typescript", "dart", "r", "matlab",
	"perl", "lua", "haskell", "clojure", "elixir", "erlang", "f#", "pascal",
	"cobol", "fortran", "assembly", "bash", "shell", "powershell", "sql",
	"html", "css", "xml", "json", "yaml", "toml",
)

var frameworksAndLibraries = stringSet(
	"react", "angular", "vue", "svelte", "django", "flask", "fastapi", "express",
	"spring", "laravel", "rails", "asp.net", "blazor", "gatsby", "next.js",
	"nuxt.js", "electron", "react-native", "flutter", "ionic", "cordova",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"opencv", "matplotlib", "seaborn", "plotly", "d3.js", "three.js",
	"bootstrap", "tailwind", "material-ui", "ant-design", "chakra-ui",
	"jquery", "lodash", "moment.js", "axios", "redux", "mobx", "rxjs",
)

var databases = stringSet(
	"mysql", "postgresql", "sqlite", "mongodb", "redis", "elasticsearch",
	"cassandra", "neo4j", "dynamodb", "firebase", "supabase", "prisma",
	"sequelize", "mongoose", "sqlalchemy", "hibernate", "entity-framework",
)

var cloudPlatforms = stringSet(
	"aws", "azure", "gcp", "google-cloud", "heroku", "netlify", "vercel",
	"digitalocean", "linode", "kubernetes", "docker", "jenkins", "gitlab-ci",
	"github-actions", "travis-ci", "circleci",
)

var toolsAndTechnologies = stringSet(
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack",
	"discord", "figma", "sketch", "adobe", "photoshop", "illustrator",
	"webpack", "vite", "parcel", "babel", "eslint", "prettier", "jest",
	"cypress", "selenium", "postman", "insomnia", "swagger", "graphql",
	"rest", "api", "microservices", "serverless", "jamstack", "pwa",
	"spa", "ssr", "ssg", "cms", "headless", "blockchain", "web3", "nft",
	"defi", "smart-contracts", "solidity", "ethereum", "bitcoin",
)

// compoundTerms are multi-word or dotted terms matched as substrings of the
// lowercased input rather than per token.
var compoundTerms = []string{
	"react-native", "next.js", "vue.js", "node.js", "asp.net",
	"material-ui", "ant-design", "chakra-ui", "github-actions",
	"gitlab-ci", "travis-ci", "google-cloud",
}

// abbreviations maps common shorthand tokens to their canonical tag.
var abbreviations = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"py":       "python",
	"cpp":      "c++",
	"csharp":   "c#",
	"postgres": "postgresql",
	"mongo":    "mongodb",
	"k8s":      "kubernetes",
	"tf":       "tensorflow",
	"ml":       "machine-learning",
	"ai":       "artificial-intelligence",
	"nlp":      "natural-language-processing",
	"cv":       "computer-vision",
}

// allTechnologies is the union of the non-language partitions.
var allTechnologies = union(frameworksAndLibraries, databases, cloudPlatforms, toolsAndTechnologies)

func stringSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, set := range sets {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
