// file: cmd/root.go
// version: 1.3.0
// guid: 7a5b1c4d-2e6f-4b8c-1d9e-0f4a5b6c7d8e

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mholtz/treeaudit/internal/audit"
	"github.com/mholtz/treeaudit/internal/config"
	"github.com/mholtz/treeaudit/internal/digest"
	"github.com/mholtz/treeaudit/internal/report"
	"github.com/mholtz/treeaudit/internal/walker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidInput indicates a missing or empty required parameter.
var ErrInvalidInput = errors.New("invalid input")

var cfgFile string
var sourceDir string
var destDir string
var algorithmName string
var workers int
var auditPath string
var includeExtension bool
var saveReports bool
var savePath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treeaudit",
	Short: "Digest manifests and file-name audits for folder trees",
	Long: `Treeaudit walks a folder tree and either exports a CSV manifest of
per-file cryptographic digests, or audits file names for character
frequencies, non-ASCII characters, and extra-dot anomalies.`,
}

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Export a CSV digest manifest for a folder tree",
	Long: `Hash every regular file under the source folder with the selected
algorithm and write a timestamped CSV manifest to the destination folder.
An existing manifest of the same name is never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDigest(time.Now())
	},
}

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit file names in a folder tree",
	Long: `Tally character frequencies across all file names under the given
folder, flag names carrying non-ASCII characters or extra dots, and
optionally save four CSV reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd.OutOrStdout())
	},
}

func runDigest(now time.Time) error {
	cfg := config.AppConfig

	if cfg.SourceDir == "" {
		return fmt.Errorf("%w: --source is required", ErrInvalidInput)
	}
	if cfg.DestDir == "" {
		return fmt.Errorf("%w: --destination is required", ErrInvalidInput)
	}

	algo, err := digest.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(digest.Names(), ", "))
	}
	if err := ensureDir(cfg.DestDir); err != nil {
		return err
	}

	fmt.Printf("Scanning directory: %s\n", cfg.SourceDir)
	entries, err := walker.Walk(cfg.SourceDir)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d files, hashing with %s (%d workers)\n", len(entries), algo, cfg.Workers)

	records, skipped := digest.ManifestWithProgress(entries, algo, cfg.Workers, len(entries) > 0)

	outPath := report.DigestFileName(cfg.DestDir, cfg.SourceDir, algo, now)
	if err := report.WriteDigest(outPath, records); err != nil {
		return err
	}

	fmt.Printf("Wrote %d digests to %s\n", len(records), outPath)
	if len(skipped) > 0 {
		fmt.Printf("Warning: skipped %d unreadable file(s):\n", len(skipped))
		for _, s := range skipped {
			fmt.Printf("  %s: %v\n", s.Path, s.Reason)
		}
	}
	return nil
}

func runAudit(out io.Writer) error {
	cfg := config.AppConfig

	if cfg.AuditPath == "" {
		return fmt.Errorf("%w: --path is required", ErrInvalidInput)
	}
	if cfg.Save && cfg.SavePath == "" {
		return fmt.Errorf("%w: --save-path is required with --save", ErrInvalidInput)
	}
	if cfg.Save {
		if err := ensureDir(cfg.SavePath); err != nil {
			return err
		}
	}

	entries, err := walker.Walk(cfg.AuditPath)
	if err != nil {
		return err
	}

	tally := audit.NewTally()
	for _, entry := range entries {
		tally.Add(entry, cfg.IncludeExtension)
	}

	fmt.Fprintf(out, "Scanned %d file name(s) under %s\n", tally.FilesScanned, cfg.AuditPath)
	fmt.Fprintf(out, "Distinct characters: %d (total %d)\n", len(tally.Chars), tally.TotalCharacters())
	fmt.Fprintf(out, "Non-ASCII characters: %d distinct, %d file(s) affected\n", len(tally.NonASCII), len(tally.NonASCIIFiles))
	fmt.Fprintf(out, "Extra-dot names: %d\n", len(tally.ExtraDotFiles))

	if !cfg.Save {
		return nil
	}

	// Report writes are best-effort: one failed CSV never blocks the
	// other three.
	if errs := report.WriteAuditReports(cfg.SavePath, tally); len(errs) > 0 {
		for _, werr := range errs {
			fmt.Fprintf(out, "Warning: could not write report %v\n", werr)
		}
		fmt.Fprintf(out, "Saved %d of 4 reports to %s\n", 4-len(errs), cfg.SavePath)
		return nil
	}

	fmt.Fprintf(out, "Saved 4 reports to %s\n", cfg.SavePath)
	return nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", walker.ErrPathNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", walker.ErrPathNotFound, path)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.treeaudit.yaml)")

	digestCmd.Flags().StringVar(&sourceDir, "source", "", "folder tree to hash")
	digestCmd.Flags().StringVar(&destDir, "destination", "", "folder receiving the manifest CSV")
	digestCmd.Flags().StringVar(&algorithmName, "algorithm", "md5", "digest algorithm: "+strings.Join(digest.Names(), ", "))
	digestCmd.Flags().IntVar(&workers, "workers", 1, "number of parallel hashing workers")

	auditCmd.Flags().StringVar(&auditPath, "path", "", "folder tree to audit")
	auditCmd.Flags().BoolVar(&includeExtension, "include-extension", true, "analyze extensions as part of file names")
	auditCmd.Flags().BoolVar(&saveReports, "save", false, "persist the four CSV reports")
	auditCmd.Flags().StringVar(&savePath, "save-path", "", "folder receiving the audit reports (required with --save)")

	viper.BindPFlag("source", digestCmd.Flags().Lookup("source"))
	viper.BindPFlag("destination", digestCmd.Flags().Lookup("destination"))
	viper.BindPFlag("algorithm", digestCmd.Flags().Lookup("algorithm"))
	viper.BindPFlag("workers", digestCmd.Flags().Lookup("workers"))
	viper.BindPFlag("path", auditCmd.Flags().Lookup("path"))
	viper.BindPFlag("include_extension", auditCmd.Flags().Lookup("include-extension"))
	viper.BindPFlag("save", auditCmd.Flags().Lookup("save"))
	viper.BindPFlag("save_path", auditCmd.Flags().Lookup("save-path"))

	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(auditCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".treeaudit")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
