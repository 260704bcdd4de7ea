package engine_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/PowerDNS/lmdb-go/lmdb"
	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/toeirei/kvbrowse/internal/engine"
)

// seedKeys returns n keys that sort in insertion order.
func seedKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%04d", i))
	}
	return keys
}

func seedPebble(dir string, keys [][]byte) {
	db, err := pebble.Open(dir, &pebble.Options{})
	Expect(err).NotTo(HaveOccurred())
	for i, k := range keys {
		Expect(db.Set(k, []byte(fmt.Sprintf("value-%d", i)), pebble.Sync)).To(Succeed())
	}
	Expect(db.Close()).To(Succeed())
}

func seedLevelDB(dir string, keys [][]byte) {
	db, err := leveldb.OpenFile(dir, nil)
	Expect(err).NotTo(HaveOccurred())
	for i, k := range keys {
		Expect(db.Put(k, []byte(fmt.Sprintf("value-%d", i)), nil)).To(Succeed())
	}
	Expect(db.Close()).To(Succeed())
}

func seedBadger(dir string, keys [][]byte) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	Expect(err).NotTo(HaveOccurred())
	Expect(db.Update(func(txn *badger.Txn) error {
		for i, k := range keys {
			if err := txn.Set(k, []byte(fmt.Sprintf("value-%d", i))); err != nil {
				return err
			}
		}
		return nil
	})).To(Succeed())
	Expect(db.Close()).To(Succeed())
}

func seedLMDB(dir string, keys [][]byte) {
	env, err := lmdb.NewEnv()
	Expect(err).NotTo(HaveOccurred())
	Expect(env.SetMapSize(1 << 24)).To(Succeed())
	Expect(env.Open(dir, 0, 0o644)).To(Succeed())
	Expect(env.Update(func(txn *lmdb.Txn) error {
		dbi, err := txn.OpenRoot(0)
		if err != nil {
			return err
		}
		for i, k := range keys {
			if err := txn.Put(dbi, k, []byte(fmt.Sprintf("value-%d", i)), 0); err != nil {
				return err
			}
		}
		return nil
	})).To(Succeed())
	Expect(env.Close()).To(Succeed())
}

var _ = Describe("Engine", func() {
	backends := []struct {
		kind engine.Kind
		seed func(string, [][]byte)
	}{
		{engine.Pebble, seedPebble},
		{engine.LevelDB, seedLevelDB},
		{engine.Badger, seedBadger},
		{engine.LMDB, seedLMDB},
	}

	for _, b := range backends {
		b := b

		Describe(string(b.kind), func() {
			var subject engine.Engine
			var dir string

			BeforeEach(func() {
				dir = GinkgoT().TempDir()
				b.seed(dir, seedKeys(65))

				var err error
				subject, err = engine.Open(dir, engine.Auto)
				Expect(err).NotTo(HaveOccurred())
			})

			AfterEach(func() {
				Expect(subject.Close()).To(Succeed())
			})

			It("should be detected", func() {
				Expect(engine.Detect(dir)).To(Equal(b.kind))
			})

			It("should count keys", func() {
				Expect(subject.Count()).To(Equal(65))
			})

			It("should read slices in key order", func() {
				entries, err := subject.Slice(0, 3)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(3))
				Expect(string(entries[0].Key)).To(Equal("key-0000"))
				Expect(string(entries[0].Value)).To(Equal("value-0"))
				Expect(string(entries[2].Key)).To(Equal("key-0002"))

				entries, err = subject.Slice(30, 30)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(30))
				Expect(string(entries[0].Key)).To(Equal("key-0030"))
				Expect(string(entries[29].Key)).To(Equal("key-0059"))
			})

			It("should return short slices at the end", func() {
				entries, err := subject.Slice(60, 30)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(5))
				Expect(string(entries[4].Key)).To(Equal("key-0064"))

				entries, err = subject.Slice(100, 30)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			})

			It("should not reserve memory for the whole limit", func() {
				entries, err := subject.Slice(0, math.MaxInt)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(65))
				Expect(string(entries[64].Key)).To(Equal("key-0064"))
			})

			It("should reject negative offsets", func() {
				_, err := subject.Slice(-1, 3)
				Expect(err).To(HaveOccurred())
			})

			It("should fail after close and tolerate double close", func() {
				Expect(subject.Close()).To(Succeed())
				Expect(subject.Close()).To(Succeed())

				_, err := subject.Count()
				Expect(err).To(MatchError(engine.ErrClosed))
				_, err = subject.Slice(0, 1)
				Expect(err).To(MatchError(engine.ErrClosed))
			})

			It("should open with an explicit kind", func() {
				Expect(subject.Close()).To(Succeed())

				var err error
				subject, err = engine.Open(dir, b.kind)
				Expect(err).NotTo(HaveOccurred())
				Expect(subject.Count()).To(Equal(65))
			})
		})
	}

	Describe("Detect", func() {
		It("should reject empty directories", func() {
			_, err := engine.Detect(GinkgoT().TempDir())
			Expect(err).To(MatchError(engine.ErrNotDatabase))
		})

		It("should reject regular files", func() {
			path := filepath.Join(GinkgoT().TempDir(), "file.db")
			Expect(os.WriteFile(path, []byte("nope"), 0o600)).To(Succeed())

			_, err := engine.Detect(path)
			Expect(err).To(MatchError(engine.ErrNotDatabase))
		})

		It("should reject missing paths", func() {
			_, err := engine.Detect(filepath.Join(GinkgoT().TempDir(), "missing"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should not open an unrecognized directory", func() {
			_, err := engine.Open(GinkgoT().TempDir(), engine.Auto)
			Expect(err).To(MatchError(engine.ErrNotDatabase))
		})
	})

	Describe("ParseKind", func() {
		DescribeTable("names",
			func(name string, want engine.Kind) {
				Expect(engine.ParseKind(name)).To(Equal(want))
			},
			Entry("empty", "", engine.Auto),
			Entry("auto", "auto", engine.Auto),
			Entry("pebble", "Pebble", engine.Pebble),
			Entry("pebbledb alias", "pebbledb", engine.Pebble),
			Entry("leveldb", "leveldb", engine.LevelDB),
			Entry("goleveldb alias", "goleveldb", engine.LevelDB),
			Entry("badger", " badger ", engine.Badger),
			Entry("lmdb", "LMDB", engine.LMDB),
		)

		It("should reject unknown names", func() {
			_, err := engine.ParseKind("rocksdb")
			Expect(err).To(MatchError(engine.ErrUnknownEngine))
		})
	})
})
