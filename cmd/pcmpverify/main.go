// Command pcmpverify verifies one or more PCMP proof files and reports,
// per file, whether every invariant of the format holds.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pcmpverify/pcmp/verifier"
)

func main() {
	infoFlag := flag.Bool("info", false, "print a key/value diagnostic dump per file")
	jsonFlag := flag.Bool("json", false, "print one indented JSON object per file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pcmpverify [--info|--json] file1 [file2 ...]")
		os.Exit(1)
	}

	for _, path := range args {
		info := verifier.VerifyFile(path)

		switch {
		case *jsonFlag:
			printJSON(info)
		case *infoFlag:
			printInfo(info)
		default:
			printSummary(info)
		}
	}
}

func printSummary(info verifier.Info) {
	status := "FAIL"
	if info.Valid {
		status = "OK"
	}

	fmt.Printf("[%s] %s n=%d order=%d\n", status, info.File, info.N, info.Order)
}

func printInfo(info verifier.Info) {
	fmt.Printf("file: %s\n", info.File)
	fmt.Printf("valid: %t\n", info.Valid)
	if info.Error != "" {
		fmt.Printf("error: %s\n", info.Error)
	}
	fmt.Printf("magic: %s\n", info.Magic)
	fmt.Printf("version: %d\n", info.Version)
	fmt.Printf("order: %d\n", info.Order)
	fmt.Printf("n: %d\n", info.N)
	fmt.Printf("ordering_ok: %t\n", info.OrderingOK)
	fmt.Printf("ordering_violation_index: %d\n", info.OrderingViolationIndex)
	fmt.Printf("permutation_ok: %t\n", info.PermutationOK)
	fmt.Printf("cvd_ok: %t\n", info.CVDOk)
	fmt.Printf("cvd_violation_index: %d\n", info.CVDViolationIndex)
	if info.CVDViolationReason != "" {
		fmt.Printf("cvd_violation_reason: %s\n", info.CVDViolationReason)
	}
	fmt.Printf("meta_ok: %t\n", info.MetaOk)
	fmt.Printf("proof_type: %d\n", info.ProofType)
	fmt.Printf("ordering_mode: %d\n", info.OrderingMode)
	fmt.Printf("chunk_bytes: %d\n", info.ChunkBytes)
	fmt.Printf("total_n: %d\n", info.TotalN)
	fmt.Printf("num_chunks: %d\n", info.NumChunks)
	fmt.Printf("stored_merkle_root: %s\n", info.StoredMerkleRoot)
	fmt.Printf("computed_merkle_root: %s\n", info.ComputedMerkleRoot)
	fmt.Printf("merkle_match: %t\n", info.MerkleMatch)
	fmt.Printf("footer_magic: %s\n", info.FooterMagic)
	fmt.Printf("footer_version: %d\n", info.FooterVersion)
	fmt.Println()
}

func printJSON(info verifier.Info) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		fmt.Fprintf(os.Stderr, "pcmpverify: encoding result for %s: %v\n", info.File, err)
	}
}
