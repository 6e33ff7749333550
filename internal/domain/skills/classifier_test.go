package skills_test

import (
	"testing"

	skills "github.com/Shaik-mohd-huzaifa/SkillIssue-finder/internal/domain/skills"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the skill classifier", t, func() {
		Convey("When classifying empty text", func() {
			So(skills.Classify(""), ShouldBeNil)
		})

		Convey("When classifying text with no known terms", func() {
			So(skills.Classify("hello world nothing relevant here"), ShouldBeNil)
		})

		Convey("When classifying simple token mentions", func() {
			tags := skills.Classify("A Python service using Redis and Docker")

			Convey("Then known terms are lowercased and returned sorted", func() {
				So(tags, ShouldResemble, []string{"docker", "python", "redis"})
			})
		})

		Convey("When the same term appears multiple times", func() {
			tags := skills.Classify("python python PYTHON")

			Convey("Then it appears once", func() {
				So(tags, ShouldResemble, []string{"python"})
			})
		})

		Convey("When classifying dotted and hyphenated terms", func() {
			Convey("Then next.js is recognized as a single token", func() {
				So(skills.Classify("built with next.js"), ShouldContain, "next.js")
			})

			Convey("Then react-native is recognized as a single token", func() {
				So(skills.Classify("a react-native app"), ShouldContain, "react-native")
			})
		})

		Convey("When classifying compound terms", func() {
			tags := skills.Classify("deployed via github-actions, runs on node.js")

			Convey("Then compound terms are found as substrings", func() {
				So(tags, ShouldContain, "github-actions")
				So(tags, ShouldContain, "node.js")
			})
		})

		Convey("When classifying abbreviations", func() {
			Convey("Then js expands to javascript", func() {
				So(skills.Classify("some js tooling"), ShouldContain, "javascript")
			})

			Convey("Then k8s expands to kubernetes", func() {
				So(skills.Classify("k8s operators"), ShouldContain, "kubernetes")
			})

			Convey("Then ts expands to typescript", func() {
				So(skills.Classify("strict ts config"), ShouldContain, "typescript")
			})
		})

		Convey("When classifying the same text twice", func() {
			text := "go microservices on kubernetes with postgresql and react"
			first := skills.Classify(text)
			second := skills.Classify(text)

			Convey("Then the result is deterministic", func() {
				So(first, ShouldResemble, second)
			})
		})
	})
}

func TestPredicates(t *testing.T) {
	Convey("Given the lexicon predicates", t, func() {
		Convey("When checking programming languages", func() {
			So(skills.IsProgrammingLanguage("go"), ShouldBeTrue)
			So(skills.IsProgrammingLanguage("Python"), ShouldBeTrue)
			So(skills.IsProgrammingLanguage("react"), ShouldBeFalse)
			So(skills.IsProgrammingLanguage("made-up-lang"), ShouldBeFalse)
		})

		Convey("When checking technologies", func() {
			So(skills.IsTechnology("react"), ShouldBeTrue)
			So(skills.IsTechnology("PostgreSQL"), ShouldBeTrue)
			So(skills.IsTechnology("made-up-tech"), ShouldBeFalse)
		})

		Convey("When a tag is a language", func() {
			Convey("Then it is never also a technology", func() {
				for _, lang := range []string{"go", "python", "rust", "java", "typescript"} {
					So(skills.IsProgrammingLanguage(lang), ShouldBeTrue)
					So(skills.IsTechnology(lang), ShouldBeFalse)
				}
			})
		})

		Convey("When checking membership across partitions", func() {
			So(skills.IsKnown("go"), ShouldBeTrue)
			So(skills.IsKnown("redis"), ShouldBeTrue)
			So(skills.IsKnown("aws"), ShouldBeTrue)
			So(skills.IsKnown("underwater-basket-weaving"), ShouldBeFalse)
		})
	})
}

func TestCategorize(t *testing.T) {
	Convey("Given a mixed list of skills", t, func() {
		tags := []string{"go", "react", "postgresql", "aws", "docker", "unknown-thing"}

		Convey("When categorizing them", func() {
			c := skills.Categorize(tags)

			Convey("Then each tag lands in its lexicon partition", func() {
				So(c.Languages, ShouldResemble, []string{"go"})
				So(c.Frameworks, ShouldResemble, []string{"react"})
				So(c.Databases, ShouldResemble, []string{"postgresql"})
				So(c.Cloud, ShouldResemble, []string{"aws"})
				So(c.Tools, ShouldResemble, []string{"docker"})
			})
		})
	})
}
