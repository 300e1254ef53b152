// Package main provides the uaspace CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/uaspace/uaspace/internal/ualog"
	"github.com/uaspace/uaspace/pkg/addrspace"
	"github.com/uaspace/uaspace/pkg/config"
	"github.com/uaspace/uaspace/pkg/httpfacade"
	"github.com/uaspace/uaspace/pkg/ua"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uaspace",
		Short: "uaspace - an OPC UA address-space node-management core",
		Long: `uaspace is a standalone implementation of the OPC UA address-space
node-management core: a typed node store, its reference graph, type
hierarchy, and the AddNodes/AddReferences/DeleteNodes/DeleteReferences
orchestrators built over it.

It does not speak the OPC UA binary protocol or host subscriptions —
those are a different layer entirely. What it runs here is the data
model a real server's node-management service sits on top of.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("uaspace v%s (%s)\n", version, commit)
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default bootstrap YAML file",
		RunE:  runInit,
	}
	initCmd.Flags().String("path", "./uaspace.yaml", "Path to write the bootstrap file")
	rootCmd.AddCommand(initCmd)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted AddNode/AddReference/DeleteNode walkthrough against a fresh store",
		RunE:  runDemo,
	}
	rootCmd.AddCommand(demoCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Boot an address space and host the read-only introspection facade",
		RunE:  runServe,
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	content := `namespaces:
  - http://opcfoundation.org/UA/
  - http://uaspace.example/

nodes:
  - nodeId: "ns=1;i=1000"
    browseName: Boiler1
    displayName: Boiler #1
    class: Object
    parentId: "ns=0;i=85"
    referenceType: Organizes
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing bootstrap file: %w", err)
	}
	fmt.Printf("wrote bootstrap file to %s\n", path)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	store := addrspace.NewStore()
	if status := addrspace.Bootstrap(store); status.IsBad() {
		return fmt.Errorf("bootstrapping namespace 0: %s", status)
	}
	orch := addrspace.NewOrchestrator(store, 2)

	fmt.Println("bootstrapped namespace 0:", store.Count(), "nodes")

	boiler := addrspace.NewNode(ua.ClassObject)
	boiler.BrowseName = "Boiler1"
	boiler.DisplayName = "Boiler #1"
	boilerID, status := orch.AddNode(boiler, ua.NodeID{}, ua.NodeID{}, ua.NodeID{}, nil)
	if status.IsBad() {
		return fmt.Errorf("adding Boiler1: %s", status)
	}
	fmt.Println("added orphan object", boilerID)

	temperature := addrspace.NewNode(ua.ClassVariable)
	temperature.BrowseName = "Temperature"
	temperature.DisplayName = "Temperature"
	temperature.Variable.DataType = addrspace.IDBaseDataType
	temperature.Variable.ValueRank = ua.ValueRankScalar
	temperature.Variable.Value = ua.Value{DataType: addrspace.IDBaseDataType, Scalar: 21.5}
	tempID, status := orch.AddNode(temperature, boilerID, addrspace.IDHasComponent, ua.NodeID{}, nil)
	if status.IsBad() {
		return fmt.Errorf("adding Temperature: %s", status)
	}
	fmt.Println("added variable", tempID, "under", boilerID)

	status = addrspace.DeleteReference(store, addrspace.ReferenceItem{
		SourceID:        boilerID,
		ReferenceTypeID: addrspace.IDHasComponent,
		IsForward:       true,
		TargetID:        ua.Local(tempID),
	}, true, false)
	if status.IsBad() {
		return fmt.Errorf("deleting reference: %s", status)
	}
	fmt.Println("deleted reference", boilerID, "->", tempID)

	if status := orch.DeleteNode(tempID, true); status.IsBad() {
		return fmt.Errorf("deleting Temperature: %s", status)
	}
	if status := orch.DeleteNode(boilerID, true); status.IsBad() {
		return fmt.Errorf("deleting Boiler1: %s", status)
	}
	fmt.Println("cleaned up, final node count:", store.Count())

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	ualog.SetLevel(ualog.ParseLevel(cfg.Logging.Level))

	store := addrspace.NewStore()
	if status := addrspace.Bootstrap(store); status.IsBad() {
		return fmt.Errorf("bootstrapping namespace 0: %s", status)
	}

	if cfg.BootstrapFile != "" {
		boot, err := config.LoadBootstrapFile(cfg.BootstrapFile)
		if err != nil {
			return err
		}
		ualog.Info("loaded bootstrap file", ualog.Fields{"nodes": len(boot.Nodes)})
	}

	if !cfg.Facade.Enabled {
		fmt.Println("facade disabled; nothing to serve")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Facade.Address, cfg.Facade.Port)
	facade := httpfacade.New(store, addr)
	if err := facade.Start(); err != nil {
		return fmt.Errorf("starting facade: %w", err)
	}
	fmt.Printf("uaspace facade listening on http://%s\n", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return facade.Stop(ctx)
}
