/*
Copyright 2023 The sftpgo-server-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/goutils"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/env"
	"github.com/zlepper/sftpgo-server-operator/util"
)

const (
	// fieldManager is the stable server-side-apply owner of every field the
	// operator renders.
	fieldManager = "sftpgo-operator"

	defaultImage = "drakkan/sftpgo:v2.5"

	appLabelKey         = "app"
	managedByLabelKey   = "managed-by"
	managedByLabelValue = "sftpgo-server-operator"

	defaultHTTPPort int32 = 8080
	defaultSftpPort int32 = 2022
	defaultFtpPort  int32 = 21

	adminUsernamePrefix = "managed_admin_"
	adminUsernameLength = 16
	adminPasswordLength = 50

	containerName = "sftpgo"

	// driftRequeueInterval re-runs the reconcile when no event source
	// triggers it, so manual edits of owned fields are reverted eventually.
	driftRequeueInterval = time.Hour
)

// SftpgoServerReconciler converges the Deployment, Service and admin
// credential Secret for each SftpgoServer resource.
type SftpgoServerReconciler struct {
	Client client.Client
	Scheme *runtime.Scheme
}

func (r *SftpgoServerReconciler) SetupWithManager(mgr ctrl.Manager, options controller.Options) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&sftpgov1alpha1.SftpgoServer{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.Secret{}).
		WithOptions(options).
		Complete(r)
}

func (r *SftpgoServerReconciler) Reconcile(ctx context.Context, req reconcile.Request) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	server := &sftpgov1alpha1.SftpgoServer{}
	if err := r.Client.Get(ctx, req.NamespacedName, server); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, err
	}

	if !server.GetDeletionTimestamp().IsZero() {
		return ctrl.Result{}, r.reconcileDelete(ctx, server)
	}

	if err := EnsureFinalizer(ctx, r.Client, server); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.ensureAdminSecret(ctx, server); err != nil {
		return ctrl.Result{}, err
	}

	ports := expectedPorts(server.Spec.Configuration)

	service := buildService(server, ports)
	if err := controllerutil.SetControllerReference(server, service, r.Scheme); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.Client.Patch(ctx, service, client.Apply, client.ForceOwnership, client.FieldOwner(fieldManager)); err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to apply service: %w", err)
	}

	deployment, err := buildDeployment(server, ports)
	if err != nil {
		return ctrl.Result{}, err
	}

	if err := controllerutil.SetControllerReference(server, deployment, r.Scheme); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.Client.Patch(ctx, deployment, client.Apply, client.ForceOwnership, client.FieldOwner(fieldManager)); err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to apply deployment: %w", err)
	}

	log.Info("Reconciled server instance", "ports", len(ports))

	return ctrl.Result{RequeueAfter: driftRequeueInterval}, nil
}

// reconcileDelete removes the rendered children explicitly so the finalizer
// is only released once they are gone; owner references would also cascade,
// but not in an observable order.
func (r *SftpgoServerReconciler) reconcileDelete(ctx context.Context, server *sftpgov1alpha1.SftpgoServer) error {
	log := ctrl.LoggerFrom(ctx)

	log.Info("Deleting server instance resources")

	children := []client.Object{
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: server.Name, Namespace: server.Namespace}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: server.Name, Namespace: server.Namespace}},
		&corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: adminSecretName(server.Name), Namespace: server.Namespace}},
	}

	for _, child := range children {
		if err := r.Client.Delete(ctx, child); err != nil && !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete %T %s: %w", child, child.GetName(), err)
		}
	}

	return RemoveFinalizer(ctx, r.Client, server)
}

// ensureAdminSecret creates the bootstrap credential Secret on first
// reconcile and keeps only its url value in sync afterwards. The generated
// username and password are never rotated: the managed service has already
// bootstrapped its default admin from them.
func (r *SftpgoServerReconciler) ensureAdminSecret(ctx context.Context, server *sftpgov1alpha1.SftpgoServer) error {
	log := ctrl.LoggerFrom(ctx)

	url := managementURL(server)

	secret := &corev1.Secret{}
	key := client.ObjectKey{Name: adminSecretName(server.Name), Namespace: server.Namespace}

	err := r.Client.Get(ctx, key, secret)
	if err == nil {
		if string(secret.Data[connectionSecretURLKey]) == url {
			return nil
		}

		log.Info("Management URL changed, patching admin secret", "url", url)

		base := secret.DeepCopy()
		secret.Data[connectionSecretURLKey] = []byte(url)

		return r.Client.Patch(ctx, secret, client.MergeFrom(base))
	}

	if !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to read admin secret: %w", err)
	}

	username, err := goutils.CryptoRandomAlphaNumeric(adminUsernameLength)
	if err != nil {
		return fmt.Errorf("failed to generate admin username: %w", err)
	}

	password, err := goutils.CryptoRandomAlphaNumeric(adminPasswordLength)
	if err != nil {
		return fmt.Errorf("failed to generate admin password: %w", err)
	}

	secret = &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      key.Name,
			Namespace: key.Namespace,
			Labels:    childLabels(server),
		},
		Data: map[string][]byte{
			connectionSecretURLKey:      []byte(url),
			connectionSecretUsernameKey: []byte(adminUsernamePrefix + username),
			connectionSecretPasswordKey: []byte(password),
		},
	}

	if err := controllerutil.SetControllerReference(server, secret, r.Scheme); err != nil {
		return err
	}

	log.Info("Creating admin secret", "secret", key.Name)

	return r.Client.Create(ctx, secret)
}

// managementURL computes the in-cluster address of the management API: the
// Service DNS name on the first HTTP binding's port, https when that binding
// enables TLS.
func managementURL(server *sftpgov1alpha1.SftpgoServer) string {
	port := defaultHTTPPort
	scheme := "http"

	if conf := server.Spec.Configuration; conf != nil && conf.Httpd != nil && len(conf.Httpd.Bindings) > 0 {
		binding := conf.Httpd.Bindings[0]
		port = util.OrDefault(binding.Port, defaultHTTPPort)

		if util.OrDefault(binding.EnableHttps, false) {
			scheme = "https"
		}
	}

	return fmt.Sprintf("%s://%s.%s.svc:%d", scheme, server.Name, server.Namespace, port)
}

// instanceLabels identify the pods of one server instance; the Service
// selector is exactly this set.
func instanceLabels(server *sftpgov1alpha1.SftpgoServer) map[string]string {
	return map[string]string{
		appLabelKey:       server.Name,
		managedByLabelKey: managedByLabelValue,
	}
}

// childLabels are what rendered children carry: the user-supplied labels
// plus the instance labels, which win on conflict.
func childLabels(server *sftpgov1alpha1.SftpgoServer) map[string]string {
	labels := map[string]string{}

	for k, v := range server.Spec.Labels {
		labels[k] = v
	}

	for k, v := range instanceLabels(server) {
		labels[k] = v
	}

	return labels
}

// expectedPorts derives the exposed port set from the declared protocol
// bindings: one port per binding with protocol defaults, plus the whole FTP
// passive range.
func expectedPorts(conf *sftpgov1alpha1.SftpgoConfiguration) []corev1.ContainerPort {
	var ports []corev1.ContainerPort

	add := func(prefix string, port int32) {
		ports = append(ports, corev1.ContainerPort{
			Name:          fmt.Sprintf("%s-%d", prefix, port),
			ContainerPort: port,
			Protocol:      corev1.ProtocolTCP,
		})
	}

	httpBindings := 0
	if conf != nil && conf.Httpd != nil {
		for _, binding := range conf.Httpd.Bindings {
			add("http", util.OrDefault(binding.Port, defaultHTTPPort))
			httpBindings++
		}
	}

	// The management API must always be reachable, so an absent HTTP section
	// still exposes the default binding.
	if httpBindings == 0 {
		add("http", defaultHTTPPort)
	}

	if conf != nil && conf.Sftpd != nil {
		for _, binding := range conf.Sftpd.Bindings {
			add("sftp", util.OrDefault(binding.Port, defaultSftpPort))
		}
	}

	if conf != nil && conf.Ftpd != nil {
		for _, binding := range conf.Ftpd.Bindings {
			add("ftp", util.OrDefault(binding.Port, defaultFtpPort))
		}

		if passive := conf.Ftpd.PassivePortRange; passive != nil && passive.Start != nil && passive.End != nil {
			for port := *passive.Start; port <= *passive.End; port++ {
				add("ftp-data", port)
			}
		}
	}

	return ports
}

func buildService(server *sftpgov1alpha1.SftpgoServer, ports []corev1.ContainerPort) *corev1.Service {
	servicePorts := make([]corev1.ServicePort, 0, len(ports))

	for _, port := range ports {
		servicePorts = append(servicePorts, corev1.ServicePort{
			Name:       port.Name,
			Port:       port.ContainerPort,
			TargetPort: intstr.FromString(port.Name),
			Protocol:   corev1.ProtocolTCP,
		})
	}

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      server.Name,
			Namespace: server.Namespace,
			Labels:    childLabels(server),
		},
		Spec: corev1.ServiceSpec{
			Selector: instanceLabels(server),
			Ports:    servicePorts,
		},
	}
}

func buildDeployment(server *sftpgov1alpha1.SftpgoServer, ports []corev1.ContainerPort) (*appsv1.Deployment, error) {
	environment, err := serverEnvironment(server)
	if err != nil {
		return nil, err
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appsv1.SchemeGroupVersion.String(),
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      server.Name,
			Namespace: server.Namespace,
			Labels:    childLabels(server),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(util.OrDefault(server.Spec.Replicas, 1)),
			Selector: &metav1.LabelSelector{
				MatchLabels: instanceLabels(server),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: childLabels(server),
				},
				Spec: corev1.PodSpec{
					NodeSelector: server.Spec.NodeSelector,
					Containers: []corev1.Container{{
						Name:  containerName,
						Image: util.Or(server.Spec.Image, defaultImage),
						Ports: ports,
						Env:   environment,
					}},
				},
			},
		},
	}, nil
}

// serverEnvironment flattens the whole configuration block into SFTPGO__
// variables and appends the default-admin bootstrap entries sourced from
// the credential Secret.
func serverEnvironment(server *sftpgov1alpha1.SftpgoServer) ([]corev1.EnvVar, error) {
	var environment []corev1.EnvVar

	if conf := server.Spec.Configuration; conf != nil {
		pairs, err := env.Flatten("SFTPGO", conf)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize configuration: %w", err)
		}

		for _, pair := range pairs {
			environment = append(environment, corev1.EnvVar{Name: pair.Key, Value: pair.Value})
		}
	}

	secretRef := func(key string) *corev1.EnvVarSource {
		return &corev1.EnvVarSource{
			SecretKeyRef: &corev1.SecretKeySelector{
				LocalObjectReference: corev1.LocalObjectReference{Name: adminSecretName(server.Name)},
				Key:                  key,
			},
		}
	}

	environment = append(environment,
		corev1.EnvVar{Name: "SFTPGO_DATA_PROVIDER__CREATE_DEFAULT_ADMIN", Value: "true"},
		corev1.EnvVar{Name: "SFTPGO_DEFAULT_ADMIN_USERNAME", ValueFrom: secretRef(connectionSecretUsernameKey)},
		corev1.EnvVar{Name: "SFTPGO_DEFAULT_ADMIN_PASSWORD", ValueFrom: secretRef(connectionSecretPasswordKey)},
	)

	return environment, nil
}
