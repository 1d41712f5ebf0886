package vectorize_test

import (
	"strings"
	"testing"

	vectorize "github.com/RAloysia/course-recommendation-app/internal/domain/vectorize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVectorizerFit(t *testing.T) {
	Convey("Given a small corpus", t, func() {
		corpus := []string{
			"python programming basics",
			"advanced python for data science",
			"cooking basics",
		}

		Convey("When fitting the vectorizer", func() {
			v := vectorize.New()
			err := v.Fit(corpus)

			Convey("Then it should build a non-empty vocabulary", func() {
				So(err, ShouldBeNil)
				So(v.VocabularySize(), ShouldBeGreaterThan, 0)
			})

			Convey("And transforming a fitted document should yield a unit vector", func() {
				vec, err := v.Transform(corpus[0])
				So(err, ShouldBeNil)
				So(vectorize.Norm(vec), ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When the corpus yields no usable terms", func() {
			v := vectorize.New()
			err := v.Fit([]string{"the and of", "to a"})

			Convey("Then it should fail with ErrEmptyVocabulary", func() {
				So(err, ShouldEqual, vectorize.ErrEmptyVocabulary)
			})
		})

		Convey("When a minimum document frequency is set", func() {
			v := vectorize.New(vectorize.WithMinDocFreq(2))
			err := v.Fit(corpus)
			So(err, ShouldBeNil)

			Convey("Then only terms in at least two documents survive", func() {
				// "python" and "basics" appear in two documents each
				So(v.VocabularySize(), ShouldEqual, 2)
			})
		})
	})
}

func TestVectorizerTransform(t *testing.T) {
	Convey("Given a fitted vectorizer", t, func() {
		v := vectorize.New()
		err := v.Fit([]string{
			"python programming",
			"data science with python",
			"cooking",
		})
		So(err, ShouldBeNil)

		Convey("When transforming a query sharing vocabulary terms", func() {
			vec, err := v.Transform("python programming")

			Convey("Then the vector is non-zero", func() {
				So(err, ShouldBeNil)
				So(len(vec), ShouldEqual, 2)
			})
		})

		Convey("When transforming a query with no shared terms", func() {
			vec, err := v.Transform("quantum knitting")

			Convey("Then the vector is zero", func() {
				So(err, ShouldBeNil)
				So(len(vec), ShouldEqual, 0)
				So(vectorize.Norm(vec), ShouldEqual, 0)
			})
		})

		Convey("When transforming the same text twice", func() {
			a, errA := v.Transform("python data science")
			b, errB := v.Transform("python data science")

			Convey("Then the encoding is deterministic", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldResemble, b)
			})
		})

		Convey("When transforming before fitting", func() {
			_, err := vectorize.New().Transform("python")

			Convey("Then it should fail with ErrNotFitted", func() {
				So(err, ShouldEqual, vectorize.ErrNotFitted)
			})
		})
	})
}

func TestCosine(t *testing.T) {
	Convey("Given encoded vectors", t, func() {
		v := vectorize.New()
		err := v.Fit([]string{
			"python programming basics",
			"advanced python data science",
			"cooking basics knife skills",
		})
		So(err, ShouldBeNil)

		enc := func(s string) vectorize.Vector {
			vec, tErr := v.Transform(s)
			So(tErr, ShouldBeNil)
			return vec
		}

		Convey("When comparing identical texts", func() {
			sim := vectorize.Cosine(enc("python programming"), enc("python programming"))

			Convey("Then similarity is 1", func() {
				So(sim, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When comparing disjoint texts", func() {
			sim := vectorize.Cosine(enc("cooking knife"), enc("python data"))

			Convey("Then similarity is 0", func() {
				So(sim, ShouldEqual, 0)
			})
		})

		Convey("When either side is a zero vector", func() {
			zero := enc("unrelated gibberish zzz")
			So(vectorize.Cosine(zero, enc("python")), ShouldEqual, 0)
			So(vectorize.Cosine(enc("python"), zero), ShouldEqual, 0)
			So(vectorize.Cosine(zero, zero), ShouldEqual, 0)
		})

		Convey("When comparing related texts", func() {
			sim := vectorize.Cosine(enc("python programming"), enc("advanced python"))

			Convey("Then similarity lies strictly between 0 and 1", func() {
				So(sim, ShouldBeGreaterThan, 0)
				So(sim, ShouldBeLessThan, 1)
			})
		})

		Convey("When similarity is computed for any pair", func() {
			texts := []string{"python", "cooking basics", "data science", "knife skills python"}
			for _, a := range texts {
				for _, b := range texts {
					sim := vectorize.Cosine(enc(a), enc(b))
					So(sim, ShouldBeGreaterThanOrEqualTo, 0)
					So(sim, ShouldBeLessThanOrEqualTo, 1)
				}
			}
		})
	})
}

func TestTransformAll(t *testing.T) {
	Convey("Given a fitted vectorizer", t, func() {
		v := vectorize.New()
		corpus := []string{"python programming", "data science", "cooking"}
		So(v.Fit(corpus), ShouldBeNil)

		Convey("When encoding the whole corpus", func() {
			vectors, err := v.TransformAll(corpus)

			Convey("Then every document is encoded", func() {
				So(err, ShouldBeNil)
				So(len(vectors), ShouldEqual, len(corpus))
				for _, vec := range vectors {
					So(vectorize.Norm(vec), ShouldAlmostEqual, 1.0, 1e-9)
				}
			})
		})

		Convey("When the vectorizer is not fitted", func() {
			_, err := vectorize.New().TransformAll([]string{"x"})
			So(err, ShouldEqual, vectorize.ErrNotFitted)
		})
	})
}

func TestCustomTokenizer(t *testing.T) {
	Convey("Given a vectorizer with a custom tokenizer", t, func() {
		v := vectorize.New(vectorize.WithTokenizer(func(s string) []string {
			return strings.Split(s, ",")
		}))

		Convey("When fitting comma-separated tags", func() {
			err := v.Fit([]string{"go,http", "go,sql"})

			Convey("Then the custom tokenizer drives the vocabulary", func() {
				So(err, ShouldBeNil)
				So(v.VocabularySize(), ShouldEqual, 3)
			})
		})
	})
}
