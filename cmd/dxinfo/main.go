//go:build windows

// Command dxinfo lists DXGI adapters, creates a Direct3D 12 device and can
// clear and present a few frames to check the swap chain path.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"

	dx "github.com/andewx/dieseldx"
	"github.com/andewx/dieseldx/config"
	"github.com/andewx/dieseldx/display"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	warp       = flag.Bool("warp", false, "use the WARP software adapter")
	frames     = flag.Int("frames", 0, "clear and present this many frames")
	verbose    = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		fatal(err)
	}
	if *warp {
		cfg.Adapter.Warp = true
	}

	level, err := cfg.LogLevel()
	fatal(err)
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	dx.SetLogger(log)

	factoryFlags := dx.FactoryCreationNone
	if cfg.Debug.Layer {
		dbg, err := dx.GetDebugInterface()
		if err != nil {
			log.Warn("debug layer unavailable", "err", err)
		} else {
			dbg.EnableLayer()
			dbg.Release()
			factoryFlags = dx.FactoryCreationDebug
		}
	}

	factory, err := dx.CreateFactory4(factoryFlags)
	fatal(err)
	defer factory.Release()

	adapters, err := factory.Adapters()
	fatal(err, factory.Release)
	releaseAdapters := func() {
		for _, a := range adapters {
			a.Release()
		}
	}
	defer releaseAdapters()

	for i, a := range adapters {
		desc, err := a.Desc()
		fatal(err, releaseAdapters, factory.Release)
		printAdapter(i, desc)
	}

	var adapter *dx.Adapter
	if cfg.Adapter.Warp {
		adapter, err = factory.EnumWarpAdapter()
		fatal(err, releaseAdapters, factory.Release)
		defer adapter.Release()
	} else {
		if cfg.Adapter.Index >= len(adapters) {
			fatal(errors.Errorf("adapter index %d out of range, %d adapters", cfg.Adapter.Index, len(adapters)),
				releaseAdapters, factory.Release)
		}
		adapter = adapters[cfg.Adapter.Index]
	}

	featureLevel, err := cfg.FeatureLevel()
	fatal(err)
	device, err := dx.CreateDevice(adapter, featureLevel)
	fatal(err, releaseAdapters, factory.Release)
	defer device.Release()

	fmt.Printf("device: feature level %s, %d node(s)\n", featureLevel, device.NodeCount())

	if *frames > 0 {
		if err := present(cfg, factory, device, *frames); err != nil {
			if removed := device.RemovedReason(); removed != nil {
				err = errors.WithMessage(err, removed.Error())
			}
			fatal(err, device.Release, releaseAdapters, factory.Release)
		}
	}

	if cfg.Debug.Layer {
		reportDebugMessages(log)
	}
}

// reportDebugMessages prints how many messages the DXGI debug layer stored
// during the run.
func reportDebugMessages(log *slog.Logger) {
	q, err := dx.GetDebugInfoQueue()
	if err != nil {
		log.Warn("dxgi info queue unavailable", "err", err)
		return
	}
	defer q.Release()
	fmt.Printf("debug messages: %d\n", q.MessageCount(dx.DebugAll))
	q.ClearStoredMessages(dx.DebugAll)
}

func printAdapter(i int, d dx.AdapterDesc) {
	kind := "hardware"
	if d.Software {
		kind = "software"
	}
	fmt.Printf("adapter %d: %s (%s)\n", i, d.Description, kind)
	fmt.Printf("  vendor 0x%04x device 0x%04x subsys 0x%08x rev %d\n", d.VendorID, d.DeviceID, d.SubSysID, d.Revision)
	fmt.Printf("  dedicated video %d MiB, dedicated system %d MiB, shared system %d MiB\n",
		d.DedicatedVideoMemory>>20, d.DedicatedSystemMemory>>20, d.SharedSystemMemory>>20)
}

const (
	width  = 640
	height = 480
)

func present(cfg *config.Config, factory *dx.Factory, device *dx.Device, count int) error {
	if err := display.Init(); err != nil {
		return err
	}
	defer display.Terminate()

	win, err := display.NewWindow("dxinfo", width, height, true)
	if err != nil {
		return err
	}
	defer win.Destroy()

	queue, err := device.CreateCommandQueue(dx.CmdListDirect, dx.PriorityNormal, dx.CommandQueueFlagNone, 0)
	if err != nil {
		return err
	}
	defer queue.Release()

	w, h := win.Size()
	desc := cfg.SwapchainDesc(uint32(w), uint32(h))
	swapchain, err := factory.CreateSwapChainForHwnd(queue, win.HWND(), &desc)
	if err != nil {
		return err
	}
	defer swapchain.Release()

	rtvHeap, err := device.CreateDescriptorHeap(desc.BufferCount, dx.DescriptorHeapRtv, dx.DescriptorHeapFlagNone, 0)
	if err != nil {
		return err
	}
	defer rtvHeap.Release()
	inc := device.DescriptorIncrementSize(dx.DescriptorHeapRtv)

	buffers := make([]*dx.Resource, desc.BufferCount)
	defer func() {
		for _, b := range buffers {
			if b != nil {
				b.Release()
			}
		}
	}()
	for i := range buffers {
		if buffers[i], err = swapchain.Buffer(uint32(i)); err != nil {
			return err
		}
		device.CreateRenderTargetView(buffers[i], nil, rtvHeap.StartCPU().Offset(i, inc))
	}

	frameCtx, err := dx.NewFrameContext(device, queue, len(buffers), 5*time.Second)
	if err != nil {
		return err
	}
	defer frameCtx.Destroy()

	start := time.Now()
	for n := 0; n < count && !win.ShouldClose(); n++ {
		win.Poll()

		index := swapchain.CurrentBackBufferIndex()
		if err := frameCtx.BeginFrame(index); err != nil {
			return err
		}
		list, err := frameCtx.NewCommandList(nil)
		if err != nil {
			return err
		}

		rtv := rtvHeap.StartCPU().Offset(int(index), inc)
		back := buffers[index]
		shade := float32(n%60) / 60

		list.ResourceBarrier([]dx.ResourceBarrier{
			dx.TransitionBarrier(back, dx.AllSubresources, dx.ResourceStatePresent, dx.ResourceStateRenderTarget, dx.BarrierFlagNone),
		})
		list.SetRenderTargets([]dx.CPUDescriptor{rtv}, false, nil)
		list.ClearRenderTargetView(rtv, [4]float32{shade, 0.2, 1 - shade, 1}, nil)
		list.ResourceBarrier([]dx.ResourceBarrier{
			dx.TransitionBarrier(back, dx.AllSubresources, dx.ResourceStateRenderTarget, dx.ResourceStatePresent, dx.BarrierFlagNone),
		})
		if err := list.Close(); err != nil {
			return err
		}
		if err := frameCtx.Submit(list); err != nil {
			return err
		}
		if err := swapchain.Present(cfg.Swapchain.SyncInterval, dx.PresentNone); err != nil {
			return err
		}
	}
	if err := frameCtx.Wait(); err != nil {
		return err
	}
	fmt.Printf("presented %d frame(s) in %v\n", count, time.Since(start).Round(time.Millisecond))
	return nil
}
